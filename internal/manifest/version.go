// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"fmt"
	"strings"
)

// Version is a IIIF Presentation API major version.
type Version string

const (
	V2Version Version = "2"
	V3Version Version = "3"
)

// Versions lists the supported versions in the order they are produced by default.
var Versions = []Version{V2Version, V3Version}

// ParseVersion accepts "2", "3", or the same with a leading "v".
func ParseVersion(s string) (Version, error) {
	v := Version(strings.TrimPrefix(strings.TrimSpace(strings.ToLower(s)), "v"))
	switch v {
	case V2Version, V3Version:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
}

// ParseVersions parses each entry of list, rejecting duplicates.
func ParseVersions(list []string) ([]Version, error) {
	out := make([]Version, 0, len(list))
	seen := make(map[Version]bool, len(list))
	for _, s := range list {
		v, err := ParseVersion(s)
		if err != nil {
			return nil, err
		}
		if seen[v] {
			return nil, fmt.Errorf("version %s listed twice", v)
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

func (v Version) String() string {
	return string(v)
}
