// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package engine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Detect guesses the engine from marker files in the directory at path.
func Detect(path string) (Kind, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotDatabase, path)
	}

	has := func(pattern string) bool {
		matches, _ := filepath.Glob(filepath.Join(path, pattern))
		return len(matches) > 0
	}

	switch {
	case has("data.mdb"):
		return LMDB, nil
	case has("KEYREGISTRY") || has("*.vlog"):
		return Badger, nil
	case has("*.ldb"):
		return LevelDB, nil
	case has("OPTIONS-*") || has("*.sst"):
		return Pebble, nil
	case has("CURRENT") && has("MANIFEST-*"):
		return LevelDB, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotDatabase, path)
}
