package styles

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlend_Endpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	tests := []struct {
		name string
		t    float64
		want lipgloss.Color
	}{
		{"zero is from", 0, from},
		{"one is to", 1, to},
		{"below zero clamps", -3, from},
		{"above one clamps", 7, to},
		{"NaN is from", math.NaN(), from},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(from, to, tt.t); got != tt.want {
				t.Errorf("Blend(t=%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

func TestBlend_Midpoint(t *testing.T) {
	got := Blend("#000000", "#ffffff", 0.5)
	if got == "#000000" || got == "#ffffff" {
		t.Errorf("Blend(0.5) = %q, want an intermediate color", got)
	}
}

func TestBlend_ANSIFallsBackToGray(t *testing.T) {
	if got := Blend("39", "39", 0.5); got != "#808080" {
		t.Errorf("Blend(ansi) = %q, want #808080", got)
	}
}

func TestBlendSteps(t *testing.T) {
	if got := BlendSteps(0, "#000000", "#ffffff"); got != nil {
		t.Errorf("BlendSteps(0) = %v, want nil", got)
	}
	if got := BlendSteps(1, "#123456", "#ffffff"); len(got) != 1 || got[0] != "#123456" {
		t.Errorf("BlendSteps(1) = %v, want [#123456]", got)
	}

	steps := BlendSteps(5, "#000000", "#ffffff")
	if len(steps) != 5 {
		t.Fatalf("len = %d, want 5", len(steps))
	}
	if steps[0] != "#000000" || steps[4] != "#ffffff" {
		t.Errorf("endpoints = %q..%q", steps[0], steps[4])
	}
}

func TestFrameStyle(t *testing.T) {
	if FrameStyle(true).GetBorderTopForeground() == FrameStyle(false).GetBorderTopForeground() {
		t.Error("active frame should use a different border color")
	}
}
