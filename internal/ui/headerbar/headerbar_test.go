package headerbar

import (
	"strings"
	"testing"

	"github.com/llehouerou/reel/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		width   int
		want    []string
		notWant []string
	}{
		{
			name:  "counter name and meta",
			info:  Info{Name: "beach.jpg", Kind: "image", Size: 2048, Page: 2, Pages: 10, Auto: true},
			width: 60,
			want:  []string{"3/10", "beach.jpg", "image", "2.0 KiB", "auto"},
		},
		{
			name:    "paused marker",
			info:    Info{Name: "beach.jpg", Kind: "image", Page: 0, Pages: 1, Auto: true, Paused: true},
			width:   60,
			want:    []string{"1/1", "paused"},
			notWant: []string{"auto"},
		},
		{
			name:  "wrap marker",
			info:  Info{Name: "beach.jpg", Kind: "image", Page: 0, Pages: 4, Auto: true, Wrap: true},
			width: 60,
			want:  []string{"1/4", "auto", "[R]"},
		},
		{
			name:    "manual mode shows no clock state",
			info:    Info{Name: "clip.mp4", Kind: "video", Page: 0, Pages: 2},
			width:   60,
			want:    []string{"1/2", "video"},
			notWant: []string{"auto", "paused"},
		},
		{
			name:  "long name keeps extension",
			info:  Info{Name: "a_really_long_file_name_from_a_camera_roll.jpeg", Kind: "image", Page: 0, Pages: 3},
			width: 40,
			want:  []string{"…jpeg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(Render(tt.info, tt.width))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, missing %q", got, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("Render() = %q, should not contain %q", got, nw)
				}
			}
			if w := testutil.MeasureWidth(got); w > tt.width {
				t.Errorf("width = %d, exceeds %d", w, tt.width)
			}
		})
	}
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(Info{Pages: 3}, 10); got != "" {
		t.Errorf("Render() at width 10 = %q, want empty", got)
	}
	if got := Render(Info{}, 80); got != "" {
		t.Errorf("Render() with no pages = %q, want empty", got)
	}
}
