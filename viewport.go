package gvsyntax

// Viewport strategy constants. For buffers above the large-file threshold
// whole-document tokenization is skipped entirely in favor of a window
// around the visible range; the cost of whole-buffer matching is only
// acceptable below the threshold.
const (
	// DefaultLargeFileThreshold is the buffer size in bytes above which
	// the engine degrades to viewport-only highlighting.
	DefaultLargeFileThreshold = 256 * 1024

	// windowMargin is how far the visible range is extended on each side
	// before tokenizing, so small scrolls stay inside the window.
	windowMargin = 10 * 1024

	// maxWindowSize caps the expanded window. An over-large window is
	// shrunk to this size centered on the visible range's midpoint, so
	// scrolling in either direction has symmetric lookahead.
	maxWindowSize = 128 * 1024

	// windowReuseRatio is the minimum overlap between the previous window
	// and the new one, as a fraction of the new window's length, for the
	// previous result to be reused without recomputation.
	windowReuseRatio = 0.8
)

// expandViewport computes the window to tokenize for a visible range in a
// buffer of textLen bytes.
func (e *Engine) expandViewport(textLen int, visible TextRange) TextRange {
	visible = visible.clamp(textLen)

	win := TextRange{
		Start: visible.Start - windowMargin,
		End:   visible.End + windowMargin,
	}.clamp(textLen)

	if win.Len() > e.maxWindow {
		mid := (visible.Start + visible.End) / 2
		win.Start = mid - e.maxWindow/2
		if win.Start < 0 {
			win.Start = 0
		}
		win.End = win.Start + e.maxWindow
		if win.End > textLen {
			win.End = textLen
			win.Start = max(0, win.End-e.maxWindow)
		}
	}

	return win
}

// reusableWindow reports whether the previously tokenized window still
// covers enough of the new window that recomputation can be skipped.
// Scrolling a few lines must not re-tokenize the whole window.
func (e *Engine) reusableWindow(win TextRange) bool {
	if !e.hasWindow || win.Len() == 0 {
		return false
	}

	overlap := e.window.Intersect(win)
	return float64(overlap) > windowReuseRatio*float64(win.Len())
}
