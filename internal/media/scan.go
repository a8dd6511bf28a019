package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrEmpty is returned by Scan when a folder holds no supported media.
var ErrEmpty = errors.New("no supported media")

// Scan lists the supported media files directly inside dir, sorted by name.
// Hidden files and subdirectories are skipped.
func Scan(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var items []Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		kind := KindOf(name)
		if kind == KindOther {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		items = append(items, Item{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Kind:    kind,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmpty)
	}

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}
