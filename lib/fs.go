package lib

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ResolveReference resolves a $schema reference found in a document located in baseDir.
// Absolute http(s) URLs are returned unchanged with remote set to true,
// file:// URLs are converted to paths, and anything else is treated as a path relative to baseDir.
func ResolveReference(baseDir, ref string) (resolved string, remote bool) {
	if u, err := url.Parse(ref); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return ref, true
		case "file":
			return filepath.Clean(filepath.FromSlash(u.Path)), false
		}
	}

	path := filepath.FromSlash(ref)
	if filepath.IsAbs(path) {
		return filepath.Clean(path), false
	}
	return filepath.Clean(filepath.Join(baseDir, path)), false
}
