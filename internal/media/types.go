// Package media finds the files a carousel shows and turns each into a
// still image: photos are decoded directly, videos contribute a frame and
// audio files their embedded cover.
package media

import (
	"path/filepath"
	"strings"
	"time"
)

// Kind is the type of a media file.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindOther Kind = "other"
)

// ImageExtensions are the still image formats decoded in-process.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// VideoExtensions are the formats previewed through an ffmpeg frame grab.
var VideoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
}

// AudioExtensions are the formats previewed through embedded cover art.
var AudioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".opus": true,
}

// KindOf returns the kind of a file by its extension.
func KindOf(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ImageExtensions[ext]:
		return KindImage
	case VideoExtensions[ext]:
		return KindVideo
	case AudioExtensions[ext]:
		return KindAudio
	default:
		return KindOther
	}
}

// Item is one page of a carousel.
type Item struct {
	Path    string
	Name    string
	Kind    Kind
	Size    int64
	ModTime time.Time
}

// Title returns the file name without its extension.
func (it Item) Title() string {
	return strings.TrimSuffix(it.Name, filepath.Ext(it.Name))
}
