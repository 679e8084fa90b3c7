// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import "errors"

var (
	// ErrItemNotFound means no item row exists for the field identifier.
	ErrItemNotFound = errors.New("item not found")

	// ErrMediaNotFound means the item exists but has no media rows.
	ErrMediaNotFound = errors.New("media not found")

	// ErrUnsupportedVersion means the version is neither 2 nor 3.
	ErrUnsupportedVersion = errors.New("unsupported IIIF version")
)

// IsNotFound reports whether err is a missing item or missing media error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound) || errors.Is(err, ErrMediaNotFound)
}
