// Package gvsyntax implements a regex driven syntax highlighting engine.
// It turns raw document text plus a declared language grammar into a list
// of non-overlapping categorized spans, scaling from tiny snippets to
// multi-hundred-kilobyte documents by degrading to viewport-only
// highlighting for large buffers.
//
// The engine is rendering agnostic. A text widget consumes the produced
// spans and maps them onto its own text storage; pixel concerns stay on
// the widget side of the boundary.
package gvsyntax

import (
	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/textstyle"
)

// TextRange contains the range of text of interest in the document. It can be
// used for highlighting, querying spans, or any other purposes.
type TextRange struct {
	// offset of the start byte in the document.
	Start int
	// offset of the end byte in the document, exclusive.
	End int
}

// Len returns the length of the range in bytes.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether other is fully contained in r.
func (r TextRange) Contains(other TextRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Intersect returns the length of the overlap between r and other.
func (r TextRange) Intersect(other TextRange) int {
	start := max(r.Start, other.Start)
	end := min(r.End, other.End)
	if end <= start {
		return 0
	}

	return end - start
}

func (r TextRange) clamp(limit int) TextRange {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > limit {
		r.End = limit
	}
	if r.End < r.Start {
		r.End = r.Start
	}

	return r
}

// Span is a categorized range of text produced by highlighting. Within one
// result no two spans overlap. The start and end offsets are byte offsets
// into the document.
type Span struct {
	// offset of the start byte in the document.
	Start int
	// offset of the end byte in the document, exclusive.
	End      int
	Category grammar.TokenCategory
	// Color is the theme color for the category, contrast-adjusted
	// against the theme background.
	Color textstyle.Color
}

// Range returns the text range covered by the span.
func (s Span) Range() TextRange {
	return TextRange{Start: s.Start, End: s.End}
}
