// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table loads item and media rows from CSV files or a SQLite
// database. Rows are kept as ordered slices of plain records.
package table

import "github.com/pdiddy/iiif-manifest/pkg/types"

const (
	itemFile  = "item.csv"
	mediaFile = "media.csv"
)

// Tables holds the item and media rows in source order.
type Tables struct {
	Items []types.Item
	Media []types.MediaItem
}

// Item returns the first item whose FieldID matches, or nil.
func (t *Tables) Item(fieldID string) *types.Item {
	for i := range t.Items {
		if t.Items[i].FieldID == fieldID {
			item := t.Items[i]
			return &item
		}
	}
	return nil
}

// MediaFor returns the media rows for fieldID in table order.
func (t *Tables) MediaFor(fieldID string) []types.MediaItem {
	var out []types.MediaItem
	for _, m := range t.Media {
		if m.FieldID == fieldID {
			out = append(out, m)
		}
	}
	return out
}
