package textstyle

import (
	"github.com/oligo/gvsyntax/grammar"
)

// Theme selects one of the two built-in color tables.
type Theme uint8

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Background returns the document background color the theme assumes.
func (t Theme) Background() Color {
	if t == Dark {
		return RGB(0.118, 0.118, 0.118)
	}
	return RGB(1, 1, 1)
}

// Foreground returns the default text color for uncategorized text.
func (t Theme) Foreground() Color {
	if t == Dark {
		return RGB(0.85, 0.85, 0.85)
	}
	return RGB(0.15, 0.15, 0.15)
}

// Color returns the theme color for a token category. Plain maps to the
// theme foreground.
func (t Theme) Color(cat grammar.TokenCategory) Color {
	if int(cat) >= grammar.NumCategories {
		return t.Foreground()
	}
	if t == Dark {
		return darkColors[cat]
	}
	return lightColors[cat]
}

var lightColors = [grammar.NumCategories]Color{
	grammar.Plain:        RGB(0.15, 0.15, 0.15),
	grammar.Keyword:      RGB(0.61, 0.14, 0.56),
	grammar.String:       RGB(0.77, 0.10, 0.09),
	grammar.Comment:      RGB(0.00, 0.50, 0.09),
	grammar.Number:       RGB(0.11, 0.00, 0.81),
	grammar.Type:         RGB(0.11, 0.27, 0.57),
	grammar.Function:     RGB(0.24, 0.15, 0.68),
	grammar.Operator:     RGB(0.28, 0.28, 0.28),
	grammar.Preprocessor: RGB(0.47, 0.30, 0.12),
	grammar.Attribute:    RGB(0.42, 0.23, 0.00),
	grammar.Variable:     RGB(0.00, 0.33, 0.40),
}

var darkColors = [grammar.NumCategories]Color{
	grammar.Plain:        RGB(0.85, 0.85, 0.85),
	grammar.Keyword:      RGB(0.78, 0.45, 0.79),
	grammar.String:       RGB(0.81, 0.56, 0.44),
	grammar.Number:       RGB(0.71, 0.81, 0.66),
	grammar.Comment:      RGB(0.42, 0.60, 0.33),
	grammar.Type:         RGB(0.31, 0.76, 0.69),
	grammar.Function:     RGB(0.86, 0.86, 0.55),
	grammar.Operator:     RGB(0.70, 0.70, 0.70),
	grammar.Preprocessor: RGB(0.61, 0.51, 0.39),
	grammar.Attribute:    RGB(0.75, 0.62, 0.31),
	grammar.Variable:     RGB(0.56, 0.78, 0.94),
}
