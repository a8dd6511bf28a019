//go:build !unix

package pageart

func getCellSize() (cellW, cellH int) {
	return defaultCellW, defaultCellH
}
