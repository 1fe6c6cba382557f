// Package snippet provides one-off highlighting of isolated text
// fragments, e.g. entries in a search results list. Unlike the per
// document engine it returns a fully materialized styled copy of the
// input, and it caches results by content since the same fragment is
// typically rendered many times.
package snippet

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/textstyle"
)

// Segment is one colored run of a styled fragment. Offsets are byte
// offsets into the source; segments are sorted and disjoint. Bytes between
// segments are uncategorized text rendered in the default color.
type Segment struct {
	// offset of the start byte in the source.
	Start int
	// offset of the end byte, exclusive.
	End      int
	Category grammar.TokenCategory
	// ColorID references the color in the containing StyledText's palette.
	ColorID int
}

// StyledText is a materialized highlighting result: the source text plus
// its colored segments and the palette their color ids resolve against.
type StyledText struct {
	Source   string
	Segments []Segment
	Palette  textstyle.ColorPalette
}

// Render returns the fragment as a true-color ANSI string.
func (s StyledText) Render() string {
	return s.RenderWith(termenv.TrueColor)
}

// RenderWith renders the fragment for the given terminal color profile.
func (s StyledText) RenderWith(profile termenv.Profile) string {
	var b strings.Builder
	b.Grow(len(s.Source))

	last := 0
	for _, seg := range s.Segments {
		if seg.Start < last || seg.End > len(s.Source) {
			// stale segment, drop it
			continue
		}
		b.WriteString(s.Source[last:seg.Start])

		styled := profile.String(s.Source[seg.Start:seg.End])
		if cl := s.Palette.GetColor(seg.ColorID); !cl.IsZero() {
			styled = styled.Foreground(profile.Color(cl.Hex()))
		}
		b.WriteString(styled.String())
		last = seg.End
	}
	b.WriteString(s.Source[last:])

	return b.String()
}
