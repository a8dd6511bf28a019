package pageart

import (
	"image"
	"strings"
)

// ImageProtocol abstracts the terminal image display protocol (Kitty or Sixel).
type ImageProtocol interface {
	// Name identifies the protocol in logs and the status line.
	Name() string

	// PrepareFromPNG encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	PrepareFromPNG(pngData []byte, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col),
	// occupying cols x rows cells.
	Place(id uint32, row, col, cols, rows int) string

	// Delete returns the escape sequence to remove the image.
	Delete(id uint32) string

	// TargetPixelSize returns the pixel box an image shown in the given
	// number of cells must fit in.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)

	// CellSize returns the pixel size of one terminal cell.
	CellSize() (width, height int)
}

// Placeholder returns blank space for the image area, so lipgloss measures
// the layout without seeing image escapes.
func Placeholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// cellsFor returns how many cells an image of the given bounds covers.
func cellsFor(b image.Rectangle, cellW, cellH int) (cols, rows int) {
	cellW, cellH = max(cellW, 1), max(cellH, 1)
	cols = (b.Dx() + cellW - 1) / cellW
	rows = (b.Dy() + cellH - 1) / cellH
	return max(cols, 1), max(rows, 1)
}
