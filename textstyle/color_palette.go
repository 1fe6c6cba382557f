package textstyle

import (
	"slices"
)

// ColorPalette manages the colors referenced by styled output. A color is
// added once and referenced by its ID(index) in the palette, so a span list
// carries small integers instead of repeated color values.
type ColorPalette struct {
	colors []Color
}

// GetColor retrieves a Color by its ID. ID can be acquired when adding the
// color to the palette. An unknown ID yields the zero color.
func (p *ColorPalette) GetColor(id int) Color {
	if id < 0 || id >= len(p.colors) {
		return Color{}
	}

	return p.colors[id]
}

// AddColor adds a color to the palette and returns its id(index). Adding a
// color already present returns the existing id.
func (p *ColorPalette) AddColor(cl Color) int {
	if idx := slices.IndexFunc(p.colors, func(c Color) bool { return c == cl }); idx >= 0 {
		return idx
	}

	p.colors = append(p.colors, cl)
	return len(p.colors) - 1
}

// Len returns the number of distinct colors in the palette.
func (p *ColorPalette) Len() int {
	return len(p.colors)
}

// Clear clears all added colors.
func (p *ColorPalette) Clear() {
	p.colors = p.colors[:0]
}
