package pageart

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// Kitty requires chunked transmission; each chunk holds at most 4096 bytes.
	chunkSize = 4096
)

// KittyProtocol transmits images once and places them by ID.
type KittyProtocol struct {
	cellW, cellH int
}

// NewKittyProtocol creates a Kitty protocol using the terminal's cell size.
func NewKittyProtocol() *KittyProtocol {
	w, h := getCellSize()
	return &KittyProtocol{cellW: w, cellH: h}
}

func (k *KittyProtocol) Name() string { return "kitty" }

func (k *KittyProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	if len(pngData) == 0 {
		return "", fmt.Errorf("kitty: empty image data")
	}
	return transmit(pngData, id), nil
}

// transmit builds the a=t (transmit, don't display) command for PNG data.
func transmit(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// f=100: PNG, q=2: suppress responses
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// Place uses a fixed placement ID (p=1) so repositioning replaces the
// previous placement without leaving ghost images.
func (k *KittyProtocol) Place(id uint32, row, col, cols, rows int) string {
	var sb strings.Builder
	// Save cursor, move, place without moving the cursor (C=1), restore.
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, cols, rows, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete removes the image and all its placements (d=I frees the data too).
func (k *KittyProtocol) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

func (k *KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * k.cellW, heightCells * k.cellH
}

func (k *KittyProtocol) CellSize() (width, height int) {
	return k.cellW, k.cellH
}
