// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import "fmt"

// Document is a built manifest ready for serialization.
type Document interface {
	Version() Version
	CanvasIDs() []string
}

// Canvas holds the version-neutral facts about one canvas. Shapes turn a
// slice of these into their own JSON layout.
type Canvas struct {
	// Index is the 1-based position of the media row.
	Index int

	ID        string
	Width     int
	Height    int
	ImageID   string
	ServiceID string
	Format    string
}

// Header holds the manifest-level values shared by both versions.
type Header struct {
	// Base is {host}/iiif/{version}/{field_id}.
	Base     string
	Title    string
	Language string
}

// ID returns the manifest identifier.
func (h Header) ID() string {
	return h.Base + "/manifest.json"
}

// Shape renders the version-specific manifest layout.
type Shape interface {
	Version() Version
	Render(h Header, canvases []Canvas) Document
}

// ShapeFor returns the Shape for v.
func ShapeFor(v Version) (Shape, error) {
	switch v {
	case V2Version:
		return v2Shape{}, nil
	case V3Version:
		return v3Shape{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, string(v))
}
