// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultHost is the base URL used for emitted identifiers when HOST is unset.
const DefaultHost = "https://example.org"

// DefaultLanguage is the language tag attached to manifest labels.
const DefaultLanguage = "ja"

// HTTPConfig holds settings for the image metadata lookups.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default in place.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with info.json requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ManifestConfig holds the environment-derived values the manifest builder needs.
// It is loaded once per run and never changed afterwards.
type ManifestConfig struct {
	// Host is the base URL for every emitted identifier (e.g. "https://example.org").
	Host string `json:"host" yaml:"host"`

	// Language is the language tag used for manifest labels (default "ja").
	Language string `json:"language" yaml:"language"`
}

// Config groups the settings for one generation run.
type Config struct {
	HTTPConfig `yaml:",inline"`

	Manifest ManifestConfig `json:"manifest" yaml:"manifest"`

	// DataDir holds one {field_id}/item.csv and {field_id}/media.csv pair per object.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Database, when set, is a SQLite file with item and media tables used instead of DataDir.
	Database string `json:"database,omitempty" yaml:"database,omitempty"`

	// OutputDir receives {version}/{field_id}/manifest.json.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Versions lists the Presentation API versions to produce, in order.
	Versions []string `json:"versions" yaml:"versions"`
}
