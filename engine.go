package gvsyntax

import (
	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/pattern"
	"github.com/oligo/gvsyntax/textstyle"
)

// Engine highlights one document. Each open document/tab owns its own
// Engine instance; the compiled rules, result cache and viewport window are
// per-document state. Calls are synchronous and must happen on the thread
// owning the text buffer, conventionally the UI thread. The engine never
// runs long: oversized buffers degrade to viewport-only highlighting
// instead of background execution.
type Engine struct {
	grammar  *grammar.Grammar
	rules    []compiledRule
	patterns pattern.Engine

	largeFileThreshold int
	maxWindow          int

	cache    cachedResult
	occupied occupiedIndex
	store    *SpanTree

	// window is the last tokenized viewport window for a large buffer.
	window    TextRange
	hasWindow bool
	// lastVisible is the most recent visible range reported by the
	// caller, used when HighlightDocument dispatches to the viewport path.
	lastVisible TextRange
}

// Option configures an Engine.
type Option func(*Engine)

// WithPatternEngine selects the regular expression engine backing the
// compiled rules. The default is the standard library RE2 engine.
func WithPatternEngine(eng pattern.Engine) Option {
	return func(e *Engine) {
		e.patterns = eng
	}
}

// WithLargeFileThreshold overrides the buffer size above which the engine
// switches to viewport-only highlighting.
func WithLargeFileThreshold(size int) Option {
	return func(e *Engine) {
		e.largeFileThreshold = size
	}
}

func withMaxWindowSize(size int) Option {
	return func(e *Engine) {
		e.maxWindow = size
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		patterns:           pattern.Go(),
		largeFileThreshold: DefaultLargeFileThreshold,
		maxWindow:          maxWindowSize,
		store:              NewSpanTree(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SetLanguage recompiles the rule list for a new grammar and clears all
// cached state. A nil grammar puts the engine in the plain text state, in
// which all highlighting calls return empty results.
func (e *Engine) SetLanguage(g *grammar.Grammar) {
	e.grammar = g
	e.rules = compileRules(g, e.patterns)
	e.InvalidateCache()
}

// Grammar returns the active grammar, or nil in the plain text state.
func (e *Engine) Grammar() *grammar.Grammar {
	return e.grammar
}

// InvalidateCache discards the cached result and viewport window. Callers
// invoke it on theme switches; SetLanguage calls it internally.
func (e *Engine) InvalidateCache() {
	e.cache.invalidate()
	e.hasWindow = false
	e.window = TextRange{}
	e.store.Set()
}

// HighlightDocument tokenizes the whole document and returns the colored
// spans. For buffers above the large-file threshold it dispatches to the
// viewport path using the last visible range the caller reported.
//
// The second return value is false when the call was skipped because the
// cached result is still valid and force was not set; the caller should
// assume the current display is already correct. With force set, the
// cached spans are returned without re-running any matching, which repairs
// externally corrupted display state cheaply.
//
// Spans are grouped by rule, each group ascending by start; use SortSpans
// for global order.
func (e *Engine) HighlightDocument(text string, theme textstyle.Theme, force bool) ([]Span, bool) {
	if len(text) > e.largeFileThreshold {
		return e.HighlightViewport(text, e.lastVisible, theme, force)
	}

	if e.cache.matches(text, theme) {
		if !force {
			return nil, false
		}
		return e.cache.spans, true
	}

	spans := e.compute(text, theme)
	e.hasWindow = false
	e.window = TextRange{}
	e.finish(text, theme, spans)

	return spans, true
}

// HighlightViewport tokenizes only an expanded window around the visible
// range and translates the resulting spans back into absolute buffer
// offsets. When the new window overlaps the previous one by more than 80%
// of its length and the text is unchanged, the call is skipped (or the
// cached spans returned, with force), so scrolling a few lines never
// re-tokenizes the window.
func (e *Engine) HighlightViewport(text string, visible TextRange, theme textstyle.Theme, force bool) ([]Span, bool) {
	e.lastVisible = visible.clamp(len(text))
	win := e.expandViewport(len(text), visible)

	if e.cache.matches(text, theme) && e.reusableWindow(win) {
		if !force {
			return nil, false
		}
		return e.cache.spans, true
	}

	spans := e.compute(text[win.Start:win.End], theme)
	for i := range spans {
		spans[i].Start += win.Start
		spans[i].End += win.Start
	}
	e.window = win
	e.hasWindow = true
	e.finish(text, theme, spans)

	return spans, true
}

// QuerySpans returns the spans of the last computed result intersecting
// [start, end), for callers repainting only part of the document.
func (e *Engine) QuerySpans(start, end int) []Span {
	return e.store.Query(start, end)
}

// compute runs the tokenizer over text and resolves theme colors, boosting
// low-contrast colors once per distinct color.
func (e *Engine) compute(text string, theme textstyle.Theme) []Span {
	if e.grammar == nil || len(e.rules) == 0 {
		return nil
	}

	e.occupied.reset()
	spans := tokenize(text, e.rules, &e.occupied)

	booster := textstyle.NewBooster(theme)
	for i := range spans {
		spans[i].Color = booster.Boost(theme.Color(spans[i].Category))
	}

	return spans
}

func (e *Engine) finish(text string, theme textstyle.Theme, spans []Span) {
	e.cache.store(text, theme, spans)
	e.store.Set(spans...)
}
