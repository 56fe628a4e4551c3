package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileCache stores entries as individual files in a directory.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in dir, creating the directory if
// needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache. The write goes through a temp file and a
// rename so an interrupted run cannot leave a truncated entry behind.
func (c *FileCache) Set(ctx context.Context, key string, data []byte) error {
	path := c.path(key)
	tmp, err := os.CreateTemp(c.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Close does nothing; the cache holds no open resources between calls.
func (c *FileCache) Close() error { return nil }

// path maps a key to a file name, replacing separators that would escape
// the cache directory.
func (c *FileCache) path(key string) string {
	safe := strings.NewReplacer("/", "_", ":", "_", "\\", "_").Replace(key)
	return filepath.Join(c.dir, safe)
}

var _ Cache = (*FileCache)(nil)
