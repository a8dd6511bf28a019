package pageart

// Cell size assumed when the terminal does not report its pixel size.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// cellSize derives the pixel size of one cell from a window size report.
// Terminals that leave the pixel fields at zero get the default.
func cellSize(cols, rows, xpix, ypix uint16) (w, h int) {
	if cols == 0 || rows == 0 || xpix == 0 || ypix == 0 {
		return defaultCellW, defaultCellH
	}
	w, h = int(xpix)/int(cols), int(ypix)/int(rows)
	if w == 0 || h == 0 {
		return defaultCellW, defaultCellH
	}
	return w, h
}
