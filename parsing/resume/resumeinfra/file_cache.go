// Package resumeinfra provides the infrastructure adapters behind the
// parsing domain's ports: cache backends keyed by content hash.
package resumeinfra

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cvlens/cvlens/parsing/resume"
)

// FileCache stores one pretty-printed JSON file per key under a root
// directory. There is no eviction, TTL or size cap: entries persist until
// externally deleted. Concurrent writers of the same key race with
// last-writer-wins semantics, which is harmless because the content is
// identical for identical keys.
type FileCache struct {
	root string
}

// NewFileCache creates the cache, creating the root directory if absent.
func NewFileCache(root string) (*FileCache, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, resume.ErrCacheFailed(err).WithDetail("dir", root)
	}
	return &FileCache{root: root}, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.root, key+".json")
}

// Get implements resume.Cache.
func (c *FileCache) Get(_ context.Context, key string) (*resume.Record, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, resume.ErrCacheFailed(err).WithDetail("key", key)
	}

	var record resume.Record
	if err := json.Unmarshal(data, &record); err != nil {
		// A corrupt entry is treated as a miss so the orchestrator
		// re-parses and overwrites it.
		return nil, false, nil
	}
	return &record, true, nil
}

// Put implements resume.Cache.
func (c *FileCache) Put(_ context.Context, key string, record *resume.Record) error {
	data, err := record.JSONIndent()
	if err != nil {
		return resume.ErrCacheFailed(err).WithDetail("key", key)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return resume.ErrCacheFailed(err).WithDetail("key", key)
	}
	return nil
}
