package gvsyntax

import (
	"github.com/oligo/gvsyntax/textstyle"
)

// cachedResult remembers the last computed span list together with the
// exact source text and theme it was computed for. It is valid only while
// the requested text is byte-for-byte identical and the theme unchanged,
// and exists to make two operations cheap: detecting that the display is
// already correct (skip), and force-reapplying spans after the display
// lost its styling through external interference.
type cachedResult struct {
	sourceText string
	theme      textstyle.Theme
	spans      []Span
	valid      bool
}

// matches reports whether the cache holds a result for exactly this text
// and theme.
func (c *cachedResult) matches(text string, theme textstyle.Theme) bool {
	return c.valid && c.theme == theme && c.sourceText == text
}

// store overwrites the cache with a freshly computed result.
func (c *cachedResult) store(text string, theme textstyle.Theme, spans []Span) {
	c.sourceText = text
	c.theme = theme
	c.spans = spans
	c.valid = true
}

// invalidate discards the cached result wholesale.
func (c *cachedResult) invalidate() {
	c.sourceText = ""
	c.spans = nil
	c.valid = false
}
