// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MediaType classifies a media row. Only MediaIIIF triggers an info.json lookup.
type MediaType string

const (
	MediaIIIF MediaType = "iiif"
)

// Item is one row of item.csv: the object a manifest describes.
type Item struct {
	// FieldID is the join key shared with the media table.
	FieldID string `json:"field_id" yaml:"field_id"`

	// Title becomes the manifest label.
	Title string `json:"title" yaml:"title"`
}

// MediaItem is one row of media.csv. Row order determines canvas order.
type MediaItem struct {
	FieldID string    `json:"field_id" yaml:"field_id"`
	Type    MediaType `json:"field_type" yaml:"field_type"`

	// URL is the image location; for MediaIIIF rows it points at an info.json.
	URL string `json:"field_url" yaml:"field_url"`
}

// IsIIIF reports whether the media row refers to a IIIF Image API service.
func (m MediaItem) IsIIIF() bool {
	return m.Type == MediaIIIF
}
