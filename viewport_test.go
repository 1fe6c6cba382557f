package gvsyntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oligo/gvsyntax/textstyle"
)

// largeDocument builds a buffer of repeated 10-byte lines ("return 1x\n"),
// so token positions are predictable on a 10-byte grid.
func largeDocument(size int) string {
	const line = "return 1x\n"
	return strings.Repeat(line, size/len(line)+1)[:size]
}

func TestExpandViewport(t *testing.T) {
	e := NewEngine()

	// small buffer: margin clamps to the bounds
	win := e.expandViewport(1000, TextRange{Start: 100, End: 200})
	assert.Equal(t, TextRange{Start: 0, End: 1000}, win)

	// interior visible range gets the margin on both sides
	win = e.expandViewport(600_000, TextRange{Start: 300_000, End: 300_100})
	assert.Equal(t, 300_000-windowMargin, win.Start)
	assert.Equal(t, 300_100+windowMargin, win.End)
}

func TestExpandViewportCapCentersOnMidpoint(t *testing.T) {
	e := NewEngine(withMaxWindowSize(1000))

	win := e.expandViewport(100_000, TextRange{Start: 50_000, End: 50_100})
	assert.Equal(t, 1000, win.Len())
	// centered on the midpoint 50050, symmetric lookahead both ways
	assert.Equal(t, 49_550, win.Start)
	assert.Equal(t, 50_550, win.End)

	// clamped at the start of the buffer
	win = e.expandViewport(100_000, TextRange{Start: 0, End: 100})
	assert.Equal(t, TextRange{Start: 0, End: 1000}, win)

	// clamped at the end of the buffer
	win = e.expandViewport(100_000, TextRange{Start: 99_900, End: 100_000})
	assert.Equal(t, TextRange{Start: 99_000, End: 100_000}, win)
}

func TestLargeFileFallback(t *testing.T) {
	text := largeDocument(600_000)
	require.Greater(t, len(text), DefaultLargeFileThreshold)

	e := NewEngine()
	e.SetLanguage(miniPython())

	visible := TextRange{Start: 300_000, End: 300_100}
	spans, ok := e.HighlightViewport(text, visible, textstyle.Light, false)
	require.True(t, ok)
	require.NotEmpty(t, spans)

	win := TextRange{Start: visible.Start - windowMargin, End: visible.End + windowMargin}
	SortSpans(spans)
	assert.GreaterOrEqual(t, spans[0].Start, win.Start)
	assert.LessOrEqual(t, spans[len(spans)-1].End, win.End)

	// the visible range itself is covered
	covered := e.QuerySpans(visible.Start, visible.End)
	assert.NotEmpty(t, covered)
}

func TestHighlightDocumentDispatchesToViewport(t *testing.T) {
	text := largeDocument(600_000)

	e := NewEngine()
	e.SetLanguage(miniPython())

	// No visible range reported yet: the window sits at the buffer start.
	spans, ok := e.HighlightDocument(text, textstyle.Light, false)
	require.True(t, ok)
	require.NotEmpty(t, spans)

	SortSpans(spans)
	assert.LessOrEqual(t, spans[len(spans)-1].End, windowMargin,
		"whole-buffer tokenization must be skipped for oversized input")
}

func TestViewportReuse(t *testing.T) {
	counting := newCountingEngine()
	e := NewEngine(WithPatternEngine(counting))
	e.SetLanguage(miniPython())

	text := largeDocument(600_000)

	first, ok := e.HighlightViewport(text, TextRange{Start: 300_000, End: 300_100}, textstyle.Light, false)
	require.True(t, ok)
	calls := *counting.calls

	// a small scroll stays inside the 80% overlap zone: no recomputation
	spans, ok := e.HighlightViewport(text, TextRange{Start: 300_050, End: 300_150}, textstyle.Light, false)
	assert.False(t, ok)
	assert.Nil(t, spans)
	assert.Equal(t, calls, *counting.calls)

	// force returns the previous result unchanged, still no matching
	spans, ok = e.HighlightViewport(text, TextRange{Start: 300_050, End: 300_150}, textstyle.Light, true)
	assert.True(t, ok)
	assert.Equal(t, first, spans)
	assert.Equal(t, calls, *counting.calls)

	// jumping far away leaves the overlap zone: recompute around the target
	spans, ok = e.HighlightViewport(text, TextRange{Start: 500_000, End: 500_100}, textstyle.Light, false)
	require.True(t, ok)
	require.NotEmpty(t, spans)
	assert.Greater(t, *counting.calls, calls)

	SortSpans(spans)
	assert.GreaterOrEqual(t, spans[0].Start, 500_000-windowMargin)
	assert.NotEmpty(t, e.QuerySpans(500_000, 500_100))
}

func TestViewportOffsetTranslation(t *testing.T) {
	text := largeDocument(600_000)

	e := NewEngine()
	e.SetLanguage(miniPython())

	visible := TextRange{Start: 300_000, End: 300_100}
	spans, ok := e.HighlightViewport(text, visible, textstyle.Light, false)
	require.True(t, ok)

	// every "return" keyword sits at a multiple of the 10-byte line length
	for _, s := range spans {
		if text[s.Start:s.End] == "return" {
			assert.Zero(t, s.Start%10, "span offsets must be absolute buffer offsets")
		}
	}
}
