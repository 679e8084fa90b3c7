// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one generation: load rows, then build and write
// a manifest per requested version.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/iiif-manifest/internal/imageinfo"
	"github.com/pdiddy/iiif-manifest/internal/manifest"
	"github.com/pdiddy/iiif-manifest/internal/output"
	"github.com/pdiddy/iiif-manifest/internal/table"
	"github.com/pdiddy/iiif-manifest/pkg/types"
)

// Deps holds the collaborators a run needs.
type Deps struct {
	Resolver imageinfo.Resolver

	// Progress, when set, is passed to the manifest builder.
	Progress func(v manifest.Version, total int) manifest.Progress
}

// Load returns the rows for fieldID from cfg.Database when set, otherwise
// from the CSV files under cfg.DataDir.
func Load(ctx context.Context, cfg types.Config, fieldID string) (*table.Tables, error) {
	if cfg.Database != "" {
		return table.LoadSQLite(ctx, cfg.Database, fieldID)
	}
	return table.LoadCSV(cfg.DataDir, fieldID)
}

// Run generates the manifests for fieldID in the order of cfg.Versions and
// returns the paths written. A failure stops the run; files written for
// earlier versions are left in place.
func Run(ctx context.Context, cfg types.Config, fieldID string, deps Deps, w io.Writer) ([]string, error) {
	versions, err := manifest.ParseVersions(cfg.Versions)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		versions = manifest.Versions
	}

	tables, err := Load(ctx, cfg, fieldID)
	if err != nil {
		return nil, fmt.Errorf("loading data for %s: %w", fieldID, err)
	}
	item := tables.Item(fieldID)
	media := tables.MediaFor(fieldID)

	b := manifest.NewBuilder(cfg.Manifest, deps.Resolver)
	b.Progress = deps.Progress

	var written []string
	for _, v := range versions {
		doc, err := b.Build(ctx, fieldID, item, media, v)
		if err != nil {
			return written, err
		}
		path, err := output.Write(cfg.OutputDir, fieldID, doc)
		if err != nil {
			return written, fmt.Errorf("writing v%s manifest: %w", v, err)
		}
		fmt.Fprintf(w, "created v%s manifest: %s\n", v, path)
		written = append(written, path)
	}
	return written, nil
}
