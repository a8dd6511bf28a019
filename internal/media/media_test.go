package media

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"beach.jpg", KindImage},
		{"BEACH.JPEG", KindImage},
		{"sticker.webp", KindImage},
		{"clip.mp4", KindVideo},
		{"clip.MKV", KindVideo},
		{"song.flac", KindAudio},
		{"notes.txt", KindOther},
		{"noext", KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.path))
		})
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	require.NoError(t, imaging.Save(img, path))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "A.png"), 4, 4)
	writePNG(t, filepath.Join(dir, ".hidden.png"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "song.mp3"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	items, err := Scan(dir)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"A.png", "b.png", "song.mp3"}, names)
	assert.Equal(t, KindAudio, items[2].Kind)
	assert.Equal(t, filepath.Join(dir, "A.png"), items[0].Path)
	assert.Positive(t, items[0].Size)
	assert.Equal(t, "A", items[0].Title())
}

func TestScan_Empty(t *testing.T) {
	_, err := Scan(t.TempDir())
	require.ErrorIs(t, err, ErrEmpty)
}

func TestScan_Missing(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadImage_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.png")
	writePNG(t, path, 6, 3)

	img, err := LoadImage(context.Background(), Item{Path: path, Name: "p.png", Kind: KindImage})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())
}

func TestLoadImage_CorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not a jpeg"), 0o600))

	_, err := LoadImage(context.Background(), Item{Path: path, Name: "bad.jpg", Kind: KindImage})
	require.Error(t, err)
}

func TestLoadImage_AudioWithoutCover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	require.NoError(t, os.WriteFile(path, []byte("no tags here at all"), 0o600))

	_, err := LoadImage(context.Background(), Item{Path: path, Name: "song.mp3", Kind: KindAudio})
	assert.True(t, errors.Is(err, ErrNoPreview), "err = %v, want ErrNoPreview", err)
}

func TestLoadImage_Other(t *testing.T) {
	_, err := LoadImage(context.Background(), Item{Kind: KindOther})
	require.ErrorIs(t, err, ErrNoPreview)
}
