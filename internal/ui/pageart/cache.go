package pageart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheDirName = "reel/pages"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache keeps resized page images on disk as PNG so revisiting a folder
// skips decoding and resampling.
type Cache struct {
	dir string
}

// NewCache creates the cache under baseDir, or under the user cache
// directory when baseDir is empty. Stale entries are pruned in the background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		baseDir = userCache
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))

	return c, nil
}

// cacheKey changes whenever the source file is modified.
func cacheKey(path string, modTime time.Time, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d:%d", path, modTime.UnixNano(), width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) file(path string, modTime time.Time, width, height int) string {
	return filepath.Join(c.dir, cacheKey(path, modTime, width, height)+".png")
}

// Get returns the cached PNG, or nil on a miss. A nil Cache always misses.
func (c *Cache) Get(path string, modTime time.Time, width, height int) []byte {
	if c == nil {
		return nil
	}

	p := c.file(path, modTime, width, height)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil
	}

	// Keep frequently viewed pages out of the next prune.
	now := time.Now()
	_ = os.Chtimes(p, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data for a page at the given pixel size.
func (c *Cache) Put(path string, modTime time.Time, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.file(path, modTime, width, height), data, 0o600)
}

// prune removes entries not touched since cutoff.
func (c *Cache) prune(cutoff time.Time) int {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(c.dir, entry.Name())) == nil {
			removed++
		}
	}
	return removed
}
