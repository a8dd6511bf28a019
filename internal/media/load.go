package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/dhowden/tag"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP format support
)

// ErrNoPreview is returned when a file has no image to show.
var ErrNoPreview = errors.New("no preview available")

// LoadImage decodes the still image that represents item.
func LoadImage(ctx context.Context, item Item) (image.Image, error) {
	switch item.Kind {
	case KindImage:
		img, err := imaging.Open(item.Path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", item.Name, err)
		}
		return img, nil
	case KindVideo:
		return videoFrame(ctx, item.Path)
	case KindAudio:
		return coverArt(item.Path)
	default:
		return nil, ErrNoPreview
	}
}

func videoFrame(ctx context.Context, path string) (image.Image, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg not found", ErrNoPreview)
	}

	// A frame one second in avoids black intros; short clips fall back to
	// the first frame.
	out, err := ffmpegFrame(ctx, "-ss", "00:00:01", "-i", path)
	if err != nil || len(out) == 0 {
		out, err = ffmpegFrame(ctx, "-i", path)
	}
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: ffmpeg produced no frame", ErrNoPreview)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("decode ffmpeg output: %w", err)
	}
	return img, nil
}

func ffmpegFrame(ctx context.Context, input ...string) ([]byte, error) {
	args := append([]string{"-hide_banner", "-loglevel", "error"}, input...)
	args = append(args, "-vframes", "1", "-f", "image2pipe", "-vcodec", "png", "-")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

func coverArt(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPreview, err)
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrNoPreview
	}

	img, err := imaging.Decode(bytes.NewReader(pic.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode cover art: %w", err)
	}
	return img, nil
}
