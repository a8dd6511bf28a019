package mpris

import (
	"os"
	"path/filepath"
)

// coverNames lists common folder art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindCover looks for folder art next to path.
// Returns the path to the art file, or empty string if not found.
func FindCover(path string) string {
	dir := filepath.Dir(path)
	for _, name := range coverNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ArtPath returns the picture a remote client should show for a page: the
// page itself when it is an image, otherwise the folder cover.
func ArtPath(path string, isImage bool) string {
	if isImage {
		return path
	}
	return FindCover(path)
}
