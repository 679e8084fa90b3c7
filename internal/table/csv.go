// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pdiddy/iiif-manifest/pkg/types"
)

// LoadCSV reads {dataDir}/{fieldID}/item.csv and media.csv.
func LoadCSV(dataDir, fieldID string) (*Tables, error) {
	dir := filepath.Join(dataDir, fieldID)

	items, err := readCSVFile(filepath.Join(dir, itemFile), ReadItems)
	if err != nil {
		return nil, err
	}
	media, err := readCSVFile(filepath.Join(dir, mediaFile), ReadMedia)
	if err != nil {
		return nil, err
	}
	return &Tables{Items: items, Media: media}, nil
}

func readCSVFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// ReadItems parses item rows. The header must include field_id and title.
func ReadItems(r io.Reader) ([]types.Item, error) {
	var items []types.Item
	err := readRows(r, []string{"field_id", "title"}, func(get func(string) string) {
		items = append(items, types.Item{
			FieldID: get("field_id"),
			Title:   get("title"),
		})
	})
	return items, err
}

// ReadMedia parses media rows. The header must include field_id,
// field_type and field_url.
func ReadMedia(r io.Reader) ([]types.MediaItem, error) {
	var media []types.MediaItem
	err := readRows(r, []string{"field_id", "field_type", "field_url"}, func(get func(string) string) {
		media = append(media, types.MediaItem{
			FieldID: get("field_id"),
			Type:    types.MediaType(get("field_type")),
			URL:     get("field_url"),
		})
	})
	return media, err
}

// readRows strips a UTF-8 BOM, maps header names case-insensitively and
// calls row for every non-empty record.
func readRows(r io.Reader, required []string, row func(get func(string) string)) error {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1

	header, err := readHeader(cr)
	if err != nil {
		return err
	}
	var missing []string
	for _, col := range required {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing column(s): %s", strings.Join(missing, ", "))
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if isBlank(rec) {
			continue
		}
		row(func(col string) string {
			return valueAt(header, rec, col)
		})
	}
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	rec, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file, expected a header row")
	}
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(rec))
	for idx, name := range rec {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := header[key]; !dup {
			header[key] = idx
		}
	}
	return header, nil
}

func valueAt(header map[string]int, rec []string, col string) string {
	idx, ok := header[col]
	if !ok || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
