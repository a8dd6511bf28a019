package styles

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend returns the color t of the way from from to to, in HCL space.
// t is clamped to [0, 1]; the endpoints return from and to unchanged.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if math.IsNaN(t) {
		t = 0
	}
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}

	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// BlendSteps returns size colors spread evenly from from to to.
func BlendSteps(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size < 1 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}
	out := make([]lipgloss.Color, size)
	for i := range size {
		out[i] = Blend(from, to, float64(i)/float64(size-1))
	}
	return out
}

// lipglossToColor converts a lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// Fallback for ANSI colors - return a neutral gray
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
