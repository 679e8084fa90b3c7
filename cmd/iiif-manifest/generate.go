// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/iiif-manifest/internal/imageinfo"
	"github.com/pdiddy/iiif-manifest/internal/logging"
	"github.com/pdiddy/iiif-manifest/internal/manifest"
	"github.com/pdiddy/iiif-manifest/internal/pipeline"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	fieldID := args[0]
	cfg := configFromViper()

	log := logging.New(logging.Options{Level: viper.GetString("log_level")})
	log.Debug().
		Str("field_id", fieldID).
		Str("host", cfg.Manifest.Host).
		Strs("versions", cfg.Versions).
		Msg("generating manifests")

	deps := pipeline.Deps{
		Resolver: imageinfo.NewHTTPResolver(cfg.HTTPConfig, log),
	}
	if !viper.GetBool("no_progress") {
		deps.Progress = newProgress(os.Stderr)
	}

	_, err := pipeline.Run(context.Background(), cfg, fieldID, deps, cmd.OutOrStdout())
	return err
}

// newProgress returns a factory for one progress bar per manifest version.
func newProgress(w io.Writer) func(manifest.Version, int) manifest.Progress {
	return func(v manifest.Version, total int) manifest.Progress {
		return progressbar.NewOptions(total,
			progressbar.OptionSetDescription(fmt.Sprintf("v%s manifest", v)),
			progressbar.OptionSetWriter(w),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
}
