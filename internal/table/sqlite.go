// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/iiif-manifest/pkg/types"
)

// LoadSQLite reads the item and media rows for fieldID from the database
// at path. Both tables use the CSV column names; rows keep rowid order.
func LoadSQLite(ctx context.Context, path, fieldID string) (*Tables, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	items, err := queryItems(ctx, db, fieldID)
	if err != nil {
		return nil, err
	}
	media, err := queryMedia(ctx, db, fieldID)
	if err != nil {
		return nil, err
	}
	return &Tables{Items: items, Media: media}, nil
}

func queryItems(ctx context.Context, db *sql.DB, fieldID string) ([]types.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT field_id, COALESCE(title, '') FROM item WHERE field_id = ? ORDER BY rowid`, fieldID)
	if err != nil {
		return nil, fmt.Errorf("querying item: %w", err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.FieldID, &it.Title); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func queryMedia(ctx context.Context, db *sql.DB, fieldID string) ([]types.MediaItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT field_id, COALESCE(field_type, ''), COALESCE(field_url, '')
		 FROM media WHERE field_id = ? ORDER BY rowid`, fieldID)
	if err != nil {
		return nil, fmt.Errorf("querying media: %w", err)
	}
	defer rows.Close()

	var media []types.MediaItem
	for rows.Next() {
		var m types.MediaItem
		var mediaType string
		if err := rows.Scan(&m.FieldID, &mediaType, &m.URL); err != nil {
			return nil, fmt.Errorf("scanning media: %w", err)
		}
		m.Type = types.MediaType(mediaType)
		media = append(media, m)
	}
	return media, rows.Err()
}
