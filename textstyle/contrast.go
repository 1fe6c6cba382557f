package textstyle

import (
	"github.com/lucasb-eyer/go-colorful"
)

// minContrastRatio is the WCAG AA threshold for normal text. Token colors
// falling below it against the theme background get boosted.
const minContrastRatio = 4.0

const (
	boostMinValue   = 0.55
	boostSaturation = 0.85
)

// Booster resolves token colors for one theme and raises the brightness of
// colors whose contrast against the theme background falls below the
// accessibility threshold. Boosted colors are memoized for the lifetime of
// the Booster, so one instance is meant to live for a single highlighting
// pass: a color seen many times is boosted once.
type Booster struct {
	theme      Theme
	background Color
	memo       map[Color]Color
}

func NewBooster(theme Theme) *Booster {
	return &Booster{
		theme:      theme,
		background: theme.Background(),
		memo:       make(map[Color]Color),
	}
}

// Boost returns c adjusted for readability against the theme background.
// Only dark themed output is adjusted; raising brightness on a light
// background would lower contrast instead.
func (b *Booster) Boost(c Color) Color {
	if b.theme != Dark {
		return c
	}

	if boosted, ok := b.memo[c]; ok {
		return boosted
	}

	boosted := c
	if ContrastRatio(c, b.background) < minContrastRatio {
		h, s, v := c.colorful().Hsv()
		if v < boostMinValue {
			v = boostMinValue
		}
		s *= boostSaturation
		boosted = fromColorful(colorful.Hsv(h, s, v), c.A)
	}

	b.memo[c] = boosted
	return boosted
}
