package app

import (
	"os"
	"path/filepath"
	"strings"
)

// normalizeDBPath accepts a bare path or a "file:" URI and returns a clean
// filesystem path; "~/" expands to the user's home directory.
func normalizeDBPath(raw string) string {
	path := strings.TrimSpace(raw)
	path = strings.TrimPrefix(path, "file:")
	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		path = path[:idx]
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}
	if path == "" {
		return ""
	}

	return filepath.Clean(path)
}

// dbNameFromPath names the database in traces after the file, without extension.
func dbNameFromPath(path string) string {
	base := filepath.Base(strings.TrimSpace(path))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	return strings.TrimSuffix(base, filepath.Ext(base))
}
