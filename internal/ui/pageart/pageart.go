// Package pageart draws page images into the terminal with the Kitty or
// Sixel graphics protocol.
//
// Preparing an image (decode, resize, encode) is slow and runs off the UI
// goroutine; applying and placing it are cheap and happen during Update/View.
package pageart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"

	"github.com/llehouerou/reel/internal/media"
)

var (
	// ErrDisabled is returned when no image protocol is available.
	ErrDisabled = errors.New("image display disabled")
	// ErrStale is returned by Apply for an image prepared for another page or size.
	ErrStale = errors.New("stale page image")
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Prepared is a resized page image ready to hand to the terminal.
type Prepared struct {
	Path   string
	Width  int // cell box it was prepared for
	Height int
	Cols   int // cells the image actually covers
	Rows   int
	PNG    []byte
	Cached bool
}

// Renderer tracks the image currently shown for the active page.
type Renderer struct {
	mu    sync.RWMutex
	proto ImageProtocol
	cache *Cache

	width  int
	height int

	wantPath    string
	currentPath string
	currentID   uint32
	cols        int
	rows        int
}

// New creates a renderer. A nil protocol disables images; a nil cache
// disables disk caching.
func New(proto ImageProtocol, cache *Cache) *Renderer {
	return &Renderer{proto: proto, cache: cache}
}

// Enabled reports whether images can be shown at all.
func (r *Renderer) Enabled() bool {
	return r.proto != nil
}

// Protocol returns the protocol name, or "none".
func (r *Renderer) Protocol() string {
	if r.proto == nil {
		return "none"
	}
	return r.proto.Name()
}

// SetSize sets the image box in cells. Reports whether it changed, in which
// case the current image must be prepared again.
func (r *Renderer) SetSize(width, height int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width == width && r.height == height {
		return false
	}
	r.width = width
	r.height = height
	return true
}

// Size returns the image box in cells.
func (r *Renderer) Size() (width, height int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.width, r.height
}

// Want records the page the view expects; Apply rejects anything else.
func (r *Renderer) Want(path string) {
	r.mu.Lock()
	r.wantPath = path
	r.mu.Unlock()
}

// Prepare loads and resizes the item's image for the current box size.
// Safe to call from a background goroutine.
func (r *Renderer) Prepare(ctx context.Context, item media.Item) (Prepared, error) {
	if r.proto == nil {
		return Prepared{}, ErrDisabled
	}

	width, height := r.Size()
	if width <= 0 || height <= 0 {
		return Prepared{}, fmt.Errorf("image box %dx%d too small", width, height)
	}

	pxW, pxH := r.proto.TargetPixelSize(width, height)
	p := Prepared{Path: item.Path, Width: width, Height: height}

	data := r.cache.Get(item.Path, item.ModTime, pxW, pxH)
	if data != nil {
		p.Cached = true
	} else {
		img, err := media.LoadImage(ctx, item)
		if err != nil {
			return Prepared{}, err
		}

		//nolint:gosec // dimensions are terminal sized, no overflow risk
		resized := resize.Thumbnail(uint(pxW), uint(pxH), img, resize.Lanczos3)

		var buf bytes.Buffer
		if err := png.Encode(&buf, resized); err != nil {
			return Prepared{}, fmt.Errorf("encode png: %w", err)
		}
		data = buf.Bytes()
		_ = r.cache.Put(item.Path, item.ModTime, pxW, pxH, data) //nolint:errcheck // best-effort
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Prepared{}, fmt.Errorf("decode png: %w", err)
	}

	cellW, cellH := r.proto.CellSize()
	p.Cols, p.Rows = cellsFor(image.Rect(0, 0, cfg.Width, cfg.Height), cellW, cellH)
	p.Cols = min(p.Cols, width)
	p.Rows = min(p.Rows, height)
	p.PNG = data
	return p, nil
}

// Apply makes a prepared image current and returns the escape sequences to
// write once: deletion of the previous image followed by the transmission.
func (r *Renderer) Apply(p Prepared) (string, error) {
	if r.proto == nil {
		return "", ErrDisabled
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Path != r.wantPath || p.Width != r.width || p.Height != r.height {
		return "", ErrStale
	}

	var out string
	if r.currentID > 0 {
		out = r.proto.Delete(r.currentID)
	}
	r.currentID = 0
	r.currentPath = ""

	id := getNextImageID()
	transmit, err := r.proto.PrepareFromPNG(p.PNG, id)
	if err != nil {
		return out, err
	}

	r.currentID = id
	r.currentPath = p.Path
	r.cols, r.rows = p.Cols, p.Rows
	return out + transmit, nil
}

// Placement returns the command drawing the current image centred in the
// box whose top-left cell is (row, col), 1-based. Empty without an image.
func (r *Renderer) Placement(row, col int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.proto == nil || r.currentID == 0 || r.currentPath != r.wantPath {
		return ""
	}

	row += (r.height - r.rows) / 2
	col += (r.width - r.cols) / 2
	return r.proto.Place(r.currentID, row, col, r.cols, r.rows)
}

// Placeholder returns blank space the size of the image box.
func (r *Renderer) Placeholder() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Placeholder(r.width, r.height)
}

// HasImage reports whether an image is shown for the wanted page.
func (r *Renderer) HasImage() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentID > 0 && r.currentPath == r.wantPath
}

// CurrentPath returns the path of the image last applied.
func (r *Renderer) CurrentPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentPath
}

// Clear forgets the current image and returns the command removing it.
func (r *Renderer) Clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmd string
	if r.proto != nil && r.currentID > 0 {
		cmd = r.proto.Delete(r.currentID)
	}
	r.currentID = 0
	r.currentPath = ""
	r.cols, r.rows = 0, 0
	return cmd
}
