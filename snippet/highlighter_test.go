package snippet

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/textstyle"
)

func TestHighlightFragment(t *testing.T) {
	h := New(nil, textstyle.Dark)

	styled := h.Highlight(`def f(): return "x"`, "python")
	require.NotEmpty(t, styled.Segments)
	assert.Equal(t, `def f(): return "x"`, styled.Source)

	first := styled.Segments[0]
	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 3, first.End)
	assert.Equal(t, grammar.Keyword, first.Category)

	// segments are sorted and disjoint
	for i := 1; i < len(styled.Segments); i++ {
		assert.GreaterOrEqual(t, styled.Segments[i].Start, styled.Segments[i-1].End)
	}
}

func TestHighlightUnknownLanguage(t *testing.T) {
	h := New(nil, textstyle.Dark)

	styled := h.Highlight("def f():", "cobol")
	assert.Empty(t, styled.Segments)
	assert.Equal(t, "def f():", styled.Source)
	assert.Equal(t, "def f():", styled.Render(), "plain text renders unstyled")
}

func TestHighlightEmptyFragment(t *testing.T) {
	h := New(nil, textstyle.Dark)

	styled := h.Highlight("", "python")
	assert.Empty(t, styled.Segments)
	assert.Empty(t, styled.Render())
}

func TestRenderANSI(t *testing.T) {
	h := New(nil, textstyle.Dark)

	rendered := h.Highlight("return 1", "python").Render()
	assert.Contains(t, rendered, "return")
	assert.Contains(t, rendered, "\x1b[", "true-color rendering emits escape sequences")

	// Ascii profile strips all styling
	plain := h.Highlight("return 1", "python").RenderWith(termenv.Ascii)
	assert.Equal(t, "return 1", plain)
}

func TestResultCached(t *testing.T) {
	h := New(nil, textstyle.Dark)

	first := h.Highlight("return 1", "python")
	second := h.Highlight("return 1", "python")
	assert.Equal(t, first, second)
}

func TestGrammarRestoredAfterCall(t *testing.T) {
	reg := grammar.Default()
	h := New(reg, textstyle.Dark)

	py, _ := reg.ByID("python")
	goGrammar, _ := reg.ByID("go")

	h.HighlightWithGrammar("return 1", py)
	before := h.engine.Grammar()

	h.HighlightWithGrammar("func main() {}", goGrammar)
	assert.Equal(t, before, h.engine.Grammar(), "the active grammar is restored after each call")
}

func TestHighlightWithGrammarNil(t *testing.T) {
	h := New(nil, textstyle.Light)

	styled := h.HighlightWithGrammar("anything", nil)
	assert.Empty(t, styled.Segments)
	assert.Equal(t, "anything", styled.Source)
}

func TestMaterializeKeepsPlainGaps(t *testing.T) {
	h := New(nil, textstyle.Light)

	styled := h.Highlight("def f(): pass", "python")
	rendered := styled.RenderWith(termenv.Ascii)
	assert.Equal(t, "def f(): pass", rendered, "uncategorized bytes survive rendering verbatim")
	assert.True(t, strings.Contains(rendered, "f():"))
}
