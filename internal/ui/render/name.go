package render

import (
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncateName shortens a file name to maxWidth cells while keeping its
// extension visible: "holiday_in_the_mountains.jpg" becomes "holiday_in…jpg".
// Names whose extension leaves no room fall back to Truncate.
func TruncateName(name string, maxWidth int) string {
	name = Sanitize(name)
	if runewidth.StringWidth(name) <= maxWidth {
		return name
	}

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	stem := strings.TrimSuffix(name, "."+ext)
	budget := maxWidth - runewidth.StringWidth(ext) - 1
	if ext == "" || budget < 1 {
		return Truncate(name, maxWidth)
	}

	var b strings.Builder
	width := 0
	gr := uniseg.NewGraphemes(stem)
	for gr.Next() {
		w := runewidth.StringWidth(gr.Str())
		if width+w > budget {
			break
		}
		b.WriteString(gr.Str())
		width += w
	}
	return b.String() + ellipsis + ext
}

// TruncatePath shortens a folder path to maxWidth cells by dropping leading
// directories: "/srv/photos/2024/Holiday" becomes "…/2024/Holiday". When the
// last element alone does not fit it goes through TruncateName.
func TruncatePath(path string, maxWidth int) string {
	path = Sanitize(path)
	if runewidth.StringWidth(path) <= maxWidth {
		return path
	}

	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Clean(path), sep)
	tail := ""
	for i := len(parts) - 1; i >= 0; i-- {
		next := parts[i]
		if tail != "" {
			next += sep + tail
		}
		if runewidth.StringWidth(ellipsis+sep+next) > maxWidth {
			break
		}
		tail = next
	}
	if tail == "" {
		return TruncateName(parts[len(parts)-1], maxWidth)
	}
	return ellipsis + sep + tail
}
