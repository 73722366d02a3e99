package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunSafetyOnlyProducesArtifact exercises the full A-G pipeline
// over §8 S1's linear chain in safety-only mode.
func TestRunSafetyOnlyProducesArtifact(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "s1.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("#Graph g1\n4\n0 1 5\n1 2 5\n2 3 5\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	rc := NewRunContext(slog.New(slog.NewTextHandler(io.Discard, nil)), 73)
	cfg := Config{InputPath: inputPath, Threads: 4, TimeoutSeconds: 300, Epsilon: 0.25, Mode: 3}

	require.NoError(t, Run(rc, cfg))

	matches, err := filepath.Glob(filepath.Join(dir, "3_*_final.out"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	require.Contains(t, string(content), "width 1")
	require.Contains(t, string(content), "seq 3 0,1 1,2 2,3")
}
