// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes manifests to {output_dir}/{version}/{field_id}/manifest.json.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/iiif-manifest/internal/manifest"
)

// FileName is the name of every written manifest.
const FileName = "manifest.json"

// Path returns where the manifest for fieldID and version v is written.
func Path(outputDir string, v manifest.Version, fieldID string) string {
	return filepath.Join(outputDir, v.String(), fieldID, FileName)
}

// Encode serializes doc as two-space indented JSON. Non-ASCII and HTML
// characters are written as-is.
func Encode(doc manifest.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes doc and stores it under outputDir, creating parent
// directories and replacing any existing file. It returns the path written.
func Write(outputDir, fieldID string, doc manifest.Document) (string, error) {
	data, err := Encode(doc)
	if err != nil {
		return "", err
	}

	path := Path(outputDir, doc.Version(), fieldID)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".manifest-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing manifest: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, nil
}
