package jotson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const corpusDir = "testdata/corpus"

func getTestFiles(t *testing.T, dir, prefix, suffix string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	keep := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(name, suffix) {
			continue
		}
		keep = append(keep, name)
	}

	return keep
}

func TestCorpusPassing(t *testing.T) {
	t.Parallel()

	files := getTestFiles(t, corpusDir, "y_", ".json")
	require.NotEmpty(t, files)
	for _, f := range files {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			text, err := os.ReadFile(filepath.Join(corpusDir, f))
			require.NoError(t, err)
			reader := NewReader()
			root := NewNull()
			ok := reader.Parse(text, root, true)
			require.True(t, ok, "parse errors:\n%s", reader.FormattedErrorMessages())
		})
	}
}

func TestCorpusFailing(t *testing.T) {
	t.Parallel()

	files := getTestFiles(t, corpusDir, "n_", ".json")
	require.NotEmpty(t, files)
	for _, f := range files {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			text, err := os.ReadFile(filepath.Join(corpusDir, f))
			require.NoError(t, err)
			reader := NewReader()
			root := NewNull()
			ok := reader.Parse(text, root, true)
			require.False(t, ok, "expected parse failure for %q", string(text))
			require.NotEmpty(t, reader.StructuredErrors())
		})
	}
}

// Every passing corpus document survives a styled-writer round trip.
func TestCorpusStyledRoundTrip(t *testing.T) {
	t.Parallel()

	files := getTestFiles(t, corpusDir, "y_", ".json")
	for _, f := range files {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			text, err := os.ReadFile(filepath.Join(corpusDir, f))
			require.NoError(t, err)
			reader := NewReader()
			root := NewNull()
			require.True(t, reader.Parse(text, root, true))

			styled := NewStyledWriter().Write(root)
			reparsed := NewNull()
			require.True(t, NewReader().ParseString(styled, reparsed, true),
				"styled output failed to reparse:\n%s", styled)
			require.True(t, root.Equal(reparsed), "tree changed through:\n%s", styled)
		})
	}
}
