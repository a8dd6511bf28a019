package pageart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/llehouerou/reel/internal/media"
)

// fakeProtocol records calls with readable output. Cells are 10x20 pixels.
type fakeProtocol struct{}

func (fakeProtocol) Name() string { return "fake" }

func (fakeProtocol) PrepareFromPNG(_ []byte, id uint32) (string, error) {
	return fmt.Sprintf("T%d;", id), nil
}

func (fakeProtocol) Place(id uint32, row, col, cols, rows int) string {
	return fmt.Sprintf("P%d@%d,%d %dx%d", id, row, col, cols, rows)
}

func (fakeProtocol) Delete(id uint32) string { return fmt.Sprintf("D%d;", id) }

func (fakeProtocol) TargetPixelSize(w, h int) (int, int) { return w * 10, h * 20 }

func (fakeProtocol) CellSize() (int, int) { return 10, 20 }

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := imaging.New(w, h, color.NRGBA{R: 30, G: 90, B: 200, A: 255})
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeItem(t *testing.T, name string, w, h int) media.Item {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	img := imaging.New(w, h, color.NRGBA{R: 30, G: 90, B: 200, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	return media.Item{
		Path:    path,
		Name:    name,
		Kind:    media.KindImage,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

func TestRenderer_Disabled(t *testing.T) {
	r := New(nil, nil)
	if r.Enabled() {
		t.Error("renderer without protocol should be disabled")
	}
	if r.Protocol() != "none" {
		t.Errorf("Protocol() = %q, want none", r.Protocol())
	}
	if _, err := r.Prepare(context.Background(), media.Item{}); !errors.Is(err, ErrDisabled) {
		t.Errorf("Prepare() error = %v, want ErrDisabled", err)
	}
	if r.Clear() != "" {
		t.Error("Clear() on disabled renderer should be empty")
	}
}

func TestRenderer_PrepareWithoutSize(t *testing.T) {
	r := New(fakeProtocol{}, nil)
	if _, err := r.Prepare(context.Background(), writeItem(t, "a.png", 10, 10)); err == nil {
		t.Error("Prepare() with a zero box should fail")
	}
}

func TestRenderer_PrepareApplyPlace(t *testing.T) {
	r := New(fakeProtocol{}, nil)
	r.SetSize(20, 10) // 200x200 px

	item := writeItem(t, "wide.png", 400, 200)
	r.Want(item.Path)

	p, err := r.Prepare(context.Background(), item)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	// 400x200 fits 200x200 as 200x100: 20 cols, 5 rows.
	if p.Cols != 20 || p.Rows != 5 {
		t.Errorf("Prepared cells = %dx%d, want 20x5", p.Cols, p.Rows)
	}

	cmd, err := r.Apply(p)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if !strings.HasPrefix(cmd, "T") {
		t.Errorf("Apply() = %q, want a transmission", cmd)
	}
	if !r.HasImage() || r.CurrentPath() != item.Path {
		t.Error("image should be current after Apply")
	}

	// Centred vertically in the 10-row box.
	place := r.Placement(1, 1)
	if !strings.HasSuffix(place, "@3,1 20x5") {
		t.Errorf("Placement() = %q, want row 3 col 1 20x5", place)
	}

	// Re-applying deletes the previous image first.
	cmd, err = r.Apply(p)
	if err != nil {
		t.Fatalf("second Apply() error: %v", err)
	}
	if !strings.HasPrefix(cmd, "D") {
		t.Errorf("second Apply() = %q, want delete before transmit", cmd)
	}

	cmd = r.Clear()
	if !strings.HasPrefix(cmd, "D") {
		t.Errorf("Clear() = %q, want a delete", cmd)
	}
	if r.HasImage() || r.Placement(1, 1) != "" {
		t.Error("no image should remain after Clear")
	}
}

func TestRenderer_ApplyStale(t *testing.T) {
	r := New(fakeProtocol{}, nil)
	r.SetSize(20, 10)

	a := writeItem(t, "a.png", 40, 40)
	b := writeItem(t, "b.png", 40, 40)
	r.Want(a.Path)

	p, err := r.Prepare(context.Background(), a)
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	r.Want(b.Path)
	if _, err := r.Apply(p); !errors.Is(err, ErrStale) {
		t.Errorf("Apply() for another page error = %v, want ErrStale", err)
	}

	r.Want(a.Path)
	if !r.SetSize(30, 10) {
		t.Error("SetSize() should report a change")
	}
	if _, err := r.Apply(p); !errors.Is(err, ErrStale) {
		t.Errorf("Apply() after resize error = %v, want ErrStale", err)
	}
	if r.SetSize(30, 10) {
		t.Error("SetSize() with the same size should report no change")
	}
}

func TestRenderer_PlacementHiddenForOtherPage(t *testing.T) {
	r := New(fakeProtocol{}, nil)
	r.SetSize(10, 10)
	item := writeItem(t, "a.png", 20, 20)
	r.Want(item.Path)

	p, err := r.Prepare(context.Background(), item)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Apply(p); err != nil {
		t.Fatal(err)
	}

	r.Want("/elsewhere.png")
	if got := r.Placement(1, 1); got != "" {
		t.Errorf("Placement() while another page is wanted = %q, want empty", got)
	}
}

func TestRenderer_UsesCache(t *testing.T) {
	cache := &Cache{dir: t.TempDir()}
	r := New(fakeProtocol{}, cache)
	r.SetSize(10, 5)
	item := writeItem(t, "a.png", 50, 50)

	first, err := r.Prepare(context.Background(), item)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first Prepare() should miss the cache")
	}

	second, err := r.Prepare(context.Background(), item)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second Prepare() should hit the cache")
	}
	if !bytes.Equal(first.PNG, second.PNG) {
		t.Error("cached image differs from the prepared one")
	}
}

func TestRenderer_PrepareNoPreview(t *testing.T) {
	r := New(fakeProtocol{}, nil)
	r.SetSize(10, 5)
	item := media.Item{Path: "/notes.txt", Name: "notes.txt", Kind: media.KindOther}

	if _, err := r.Prepare(context.Background(), item); !errors.Is(err, media.ErrNoPreview) {
		t.Errorf("Prepare() error = %v, want ErrNoPreview", err)
	}
}
