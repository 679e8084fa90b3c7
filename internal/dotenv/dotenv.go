// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dotenv loads KEY=VALUE files (.env) into the process environment.
// Variable names keep the case they are written with, and variables
// already present in the environment win over file values.
package dotenv

import (
	"fmt"
	"os"

	"github.com/subosito/gotenv"
)

// Load parses the .env file at path. A missing file is not an error;
// Load returns an empty map.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	defer f.Close()

	env, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", path, err)
	}

	vars := make(map[string]string, len(env))
	for k, v := range env {
		vars[k] = v
	}
	return vars, nil
}

// Apply sets each variable that is not already defined in the environment
// and returns the names it set.
func Apply(vars map[string]string) ([]string, error) {
	var set []string
	for k, val := range vars {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return set, fmt.Errorf("setting %s: %w", k, err)
		}
		set = append(set, k)
	}
	return set, nil
}
