package lib

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveReference(t *testing.T) {
	testCases := []struct {
		baseDir  string
		ref      string
		expected string
		remote   bool
	}{
		{baseDir: "schemas", ref: "./meta.json", expected: filepath.FromSlash("schemas/meta.json")},
		{baseDir: "schemas/sub", ref: "../meta.json", expected: filepath.FromSlash("schemas/meta.json")},
		{baseDir: ".", ref: "meta.json", expected: "meta.json"},
		{baseDir: "schemas", ref: "https://json-schema.org/draft/2020-12/schema", expected: "https://json-schema.org/draft/2020-12/schema", remote: true},
		{baseDir: "schemas", ref: "http://example.com/s.json", expected: "http://example.com/s.json", remote: true},
	}

	for _, tc := range testCases {
		resolved, remote := ResolveReference(tc.baseDir, tc.ref)
		require.Equal(t, tc.expected, resolved, tc.ref)
		require.Equal(t, tc.remote, remote, tc.ref)
	}
}
