// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest maps an item and its media rows to a IIIF Presentation
// API manifest. The layout differences between versions 2 and 3 live in
// the Shape implementations; Builder only computes version-neutral canvases.
package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/iiif-manifest/internal/imageinfo"
	"github.com/pdiddy/iiif-manifest/pkg/types"
)

// ImageFormat is written for every image resource regardless of media type.
const ImageFormat = "image/jpeg"

const infoJSONSuffix = "/info.json"

// Progress receives one tick per finished canvas.
// *progressbar.ProgressBar satisfies it. Add errors only affect the
// display and never fail a build.
type Progress interface {
	Add(n int) error
}

// Builder builds manifests for one run. Config is fixed for the Builder's lifetime.
type Builder struct {
	Config   types.ManifestConfig
	Resolver imageinfo.Resolver

	// Progress, when set, is called once per Build with the canvas total.
	Progress func(v Version, total int) Progress
}

// NewBuilder returns a Builder with defaults applied to cfg.
func NewBuilder(cfg types.ManifestConfig, r imageinfo.Resolver) *Builder {
	if cfg.Host == "" {
		cfg.Host = types.DefaultHost
	}
	if cfg.Language == "" {
		cfg.Language = types.DefaultLanguage
	}
	cfg.Host = strings.TrimRight(cfg.Host, "/")
	return &Builder{Config: cfg, Resolver: r}
}

// Build returns the version v manifest for fieldID. item must be non-nil
// and media non-empty; both are checked before any info.json lookup.
// Media rows become canvases p1..pN in slice order.
func (b *Builder) Build(ctx context.Context, fieldID string, item *types.Item, media []types.MediaItem, v Version) (Document, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: no item with field_id %q", ErrItemNotFound, fieldID)
	}
	if len(media) == 0 {
		return nil, fmt.Errorf("%w: no media with field_id %q", ErrMediaNotFound, fieldID)
	}
	shape, err := ShapeFor(v)
	if err != nil {
		return nil, err
	}

	h := Header{
		Base:     fmt.Sprintf("%s/iiif/%s/%s", b.Config.Host, v, fieldID),
		Title:    item.Title,
		Language: b.Config.Language,
	}

	var bar Progress
	if b.Progress != nil {
		bar = b.Progress(v, len(media))
	}

	canvases := make([]Canvas, 0, len(media))
	for i, m := range media {
		n := i + 1
		dims := imageinfo.Fallback
		if m.IsIIIF() && b.Resolver != nil {
			dims = b.Resolver.Resolve(ctx, m.URL)
		}
		canvases = append(canvases, Canvas{
			Index:     n,
			ID:        fmt.Sprintf("%s/canvas/p%d", h.Base, n),
			Width:     dims.Width,
			Height:    dims.Height,
			ImageID:   m.URL,
			ServiceID: ServiceID(m.URL),
			Format:    ImageFormat,
		})
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	return shape.Render(h, canvases), nil
}

// ServiceID strips everything from the first "/info.json" onward.
// URLs without the suffix are returned unchanged.
func ServiceID(url string) string {
	if i := strings.Index(url, infoJSONSuffix); i >= 0 {
		return url[:i]
	}
	return url
}
