// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the iiif-manifest CLI.
// It reads item.csv and media.csv for one field identifier and writes
// IIIF Presentation API 2 and 3 manifests.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/iiif-manifest/internal/dotenv"
	"github.com/pdiddy/iiif-manifest/internal/manifest"
	"github.com/pdiddy/iiif-manifest/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "iiif-manifest/0.1"

// rootCmd generates the manifests for one field identifier.
var rootCmd = &cobra.Command{
	Use:   "iiif-manifest FIELD_ID",
	Short: "Create IIIF Presentation API manifests from item and media tables",
	Long: `iiif-manifest reads {data-dir}/{FIELD_ID}/item.csv and media.csv (or the
item and media tables of a SQLite database given with --db) and writes one
manifest per IIIF Presentation API version to
{output-dir}/{version}/{FIELD_ID}/manifest.json.

Media rows with field_type "iiif" point at an info.json; their width and
height are read from it, falling back to 1000x1000. Identifiers are built
from HOST (default https://example.org), which may also be set in .env.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		vars, err := dotenv.Load(envFile)
		if err != nil {
			return err
		}
		set, err := dotenv.Apply(vars)
		if err != nil {
			return err
		}
		if len(set) > 0 {
			sort.Strings(set)
			fmt.Fprintf(os.Stderr, "Loaded from %s: %v\n", envFile, set)
		}
		return nil
	},
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./iiif-manifest.yaml or ~/.config/iiif-manifest/config.yaml)")
	pf.String("env-file", ".env", "file of KEY=VALUE lines applied to the environment")
	pf.String("data-dir", "./data", "directory holding {FIELD_ID}/item.csv and media.csv")
	pf.String("db", "", "SQLite database with item and media tables (replaces --data-dir)")
	pf.String("output-dir", "../docs/iiif", "directory receiving {version}/{FIELD_ID}/manifest.json")
	pf.StringSlice("versions", []string{"2", "3"}, "IIIF Presentation API versions to write")
	pf.String("host", types.DefaultHost, "base URL for manifest identifiers (env HOST)")
	pf.String("language", types.DefaultLanguage, "language tag for manifest labels")
	pf.Duration("timeout", 0, "info.json request timeout (0 keeps the transport default)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Bool("no-progress", false, "disable progress bars")

	for key, flag := range map[string]string{
		"data_dir":    "data-dir",
		"database":    "db",
		"output_dir":  "output-dir",
		"versions":    "versions",
		"host":        "host",
		"language":    "language",
		"timeout":     "timeout",
		"log_level":   "log-level",
		"no_progress": "no-progress",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("user_agent", defaultUserAgent)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("iiif-manifest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "iiif-manifest"))
		}
	}

	viper.SetEnvPrefix("IIIF_MANIFEST")
	viper.AutomaticEnv()
	// HOST is read unprefixed.
	if err := viper.BindEnv("host", "HOST", "IIIF_MANIFEST_HOST"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: binding HOST:", err)
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configFromViper assembles the run configuration from flags, environment
// and config file.
func configFromViper() types.Config {
	return types.Config{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		Manifest: types.ManifestConfig{
			Host:     viper.GetString("host"),
			Language: viper.GetString("language"),
		},
		DataDir:   viper.GetString("data_dir"),
		Database:  viper.GetString("database"),
		OutputDir: viper.GetString("output_dir"),
		Versions:  splitList(viper.GetStringSlice("versions")),
	}
}

// splitList splits each entry on commas and drops blanks. Environment
// values arrive whitespace-split only, so "2,3" is one entry until here.
func splitList(list []string) []string {
	var out []string
	for _, entry := range list {
		for _, part := range strings.Split(entry, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// exitMessage formats err for the user. Missing identifiers are expected
// failures; anything else is reported as unexpected.
func exitMessage(err error) string {
	if manifest.IsNotFound(err) {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("unexpected error: %v", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, exitMessage(err))
		os.Exit(1)
	}
}
