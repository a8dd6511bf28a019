//go:build unix

package pageart

import (
	"os"

	"golang.org/x/sys/unix"
)

// getCellSize asks the terminal for its window size with TIOCGWINSZ. Stderr
// is skipped since the app captures it into a pipe; stdin is tried when
// stdout is not the terminal.
func getCellSize() (cellW, cellH int) {
	for _, f := range []*os.File{os.Stdout, os.Stdin} {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			continue
		}
		return cellSize(ws.Col, ws.Row, ws.Xpixel, ws.Ypixel)
	}
	return defaultCellW, defaultCellH
}
