package snippet

import (
	"hash/fnv"
	"slices"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/oligo/gvsyntax"
	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/textstyle"
)

const (
	resultTTL       = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Highlighter highlights isolated fragments. It owns a single engine whose
// active grammar is swapped in for the duration of one call and restored
// afterward, so it can be shared across call sites as long as all calls
// are serialized on a single thread. Results are cached by content with a
// short TTL because results lists render the same fragments repeatedly.
type Highlighter struct {
	engine   *gvsyntax.Engine
	registry *grammar.Registry
	theme    textstyle.Theme
	results  *gocache.Cache
}

// New returns a snippet highlighter resolving language ids against reg.
// A nil registry falls back to the built-in grammars.
func New(reg *grammar.Registry, theme textstyle.Theme, opts ...gvsyntax.Option) *Highlighter {
	if reg == nil {
		reg = grammar.Default()
	}

	return &Highlighter{
		engine:   gvsyntax.NewEngine(opts...),
		registry: reg,
		theme:    theme,
		results:  gocache.New(resultTTL, cleanupInterval),
	}
}

// Highlight returns a styled copy of text for the given language id. An
// unknown language yields the fragment with no segments, which is the
// normal plain text state rather than an error.
func (h *Highlighter) Highlight(text string, languageID string) StyledText {
	g, _ := h.registry.ByID(languageID)
	return h.HighlightWithGrammar(text, g)
}

// HighlightWithGrammar is like Highlight with an explicit grammar, for
// fragments whose language is not registered.
func (h *Highlighter) HighlightWithGrammar(text string, g *grammar.Grammar) StyledText {
	if g == nil || text == "" {
		return StyledText{Source: text}
	}

	key := resultKey(g.ID, h.theme, text)
	if cached, ok := h.results.Get(key); ok {
		return cached.(StyledText)
	}

	prev := h.engine.Grammar()
	h.engine.SetLanguage(g)
	spans, _ := h.engine.HighlightDocument(text, h.theme, true)
	h.engine.SetLanguage(prev)

	styled := materialize(text, spans)
	h.results.Set(key, styled, gocache.DefaultExpiration)

	return styled
}

func materialize(text string, spans []gvsyntax.Span) StyledText {
	// Sort a copy; the engine may hand out its cached slice.
	spans = slices.Clone(spans)
	gvsyntax.SortSpans(spans)

	styled := StyledText{Source: text}
	for _, s := range spans {
		styled.Segments = append(styled.Segments, Segment{
			Start:    s.Start,
			End:      s.End,
			Category: s.Category,
			ColorID:  styled.Palette.AddColor(s.Color),
		})
	}

	return styled
}

func resultKey(languageID string, theme textstyle.Theme, text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))

	return languageID + "/" + theme.String() + "/" + strconv.FormatUint(h.Sum64(), 16)
}
