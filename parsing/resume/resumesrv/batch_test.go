package resumesrv

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlens/cvlens/parsing/resume"
)

// stubTextSource serves canned text per path and fails on demand.
type stubTextSource struct {
	failOn string
}

func (s *stubTextSource) Text(path string) (string, error) {
	if s.failOn != "" && strings.HasSuffix(path, s.failOn) {
		return "", errors.New("extraction failed")
	}
	return "resume text from " + filepath.Base(path), nil
}

func writeBatchFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return dir
}

func TestProcessDirectory(t *testing.T) {
	dir := writeBatchFiles(t, "b.txt", "a.txt", "c.txt", "notes.md")

	gen := &stubGenerator{replies: []string{validReply, validReply, validReply}}
	svc := NewService(gen, nil, &stubTextSource{}, fastOptions())

	var seen []string
	result, err := svc.ProcessDirectory(context.Background(), dir, BatchOptions{
		Progress: func(_, _ int, filename string) { seen = append(seen, filename) },
	})
	require.NoError(t, err)

	// Lexical order, unsupported extensions skipped.
	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt"}, seen)
	require.Len(t, result, 3)
	assert.Equal(t, 3, result.Succeeded())
	assert.Equal(t, 0, result.Failed())
	for i, name := range []string{"a.txt", "b.txt", "c.txt"} {
		assert.Equal(t, name, result[i].Filename)
		assert.True(t, result[i].Success)
		assert.NotNil(t, result[i].Data)
	}
}

func TestProcessDirectoryFailureDoesNotAbort(t *testing.T) {
	dir := writeBatchFiles(t, "a.txt", "b.txt", "c.txt")

	gen := &stubGenerator{replies: []string{validReply, validReply}}
	svc := NewService(gen, nil, &stubTextSource{failOn: "b.txt"}, fastOptions())

	result, err := svc.ProcessDirectory(context.Background(), dir, BatchOptions{})
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, 2, result.Succeeded())
	assert.Equal(t, 1, result.Failed())

	assert.True(t, result[0].Success)
	assert.False(t, result[1].Success)
	assert.Equal(t, "b.txt", result[1].Filename)
	assert.NotEmpty(t, result[1].Error)
	assert.Nil(t, result[1].Data)
	assert.True(t, result[2].Success)
}

func TestProcessDirectoryWritesOutput(t *testing.T) {
	dir := writeBatchFiles(t, "a.txt")
	out := filepath.Join(t.TempDir(), "results.json")

	gen := &stubGenerator{replies: []string{validReply}}
	svc := NewService(gen, nil, &stubTextSource{}, fastOptions())

	_, err := svc.ProcessDirectory(context.Background(), dir, BatchOptions{OutputPath: out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"), "output must be a 2-space indented array")

	var decoded resume.BatchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "a.txt", decoded[0].Filename)
}

func TestProcessDirectoryEmpty(t *testing.T) {
	dir := t.TempDir()

	svc := NewService(&stubGenerator{}, nil, &stubTextSource{}, fastOptions())
	result, err := svc.ProcessDirectory(context.Background(), dir, BatchOptions{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestProcessDirectoryUnreadable(t *testing.T) {
	svc := NewService(&stubGenerator{}, nil, &stubTextSource{}, fastOptions())
	_, err := svc.ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"), BatchOptions{})
	assert.Error(t, err)
}
