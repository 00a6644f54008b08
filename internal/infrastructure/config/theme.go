package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a hex string such as "#ff61a6" into an opaque RGBA
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// ParsePalette converts every palette entry; index 0 of the result is token 1
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hexes))
	for i, hex := range hexes {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Lighten blends c toward white by t in [0,1], in Lab space
func Lighten(c color.RGBA, t float64) color.RGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return c
	}
	r, g, b := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// Colors is the parsed form of a ThemeConfig
type Colors struct {
	Palette    []color.RGBA
	Background color.RGBA
	Grid       color.RGBA
	Ghost      color.RGBA
}

// Parse resolves every hex string in the theme
func (t *ThemeConfig) Parse() (*Colors, error) {
	palette, err := ParsePalette(t.Palette)
	if err != nil {
		return nil, err
	}

	bg, err := ParseColor(t.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	grid, err := ParseColor(t.Grid)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	ghost, err := ParseColor(t.Ghost)
	if err != nil {
		return nil, fmt.Errorf("ghost: %w", err)
	}

	return &Colors{
		Palette:    palette,
		Background: bg,
		Grid:       grid,
		Ghost:      ghost,
	}, nil
}
