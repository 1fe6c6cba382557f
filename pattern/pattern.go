// Package pattern abstracts the regular expression engine used by the
// tokenizer behind a minimal capability interface, so the concrete engine
// is swappable without touching the overlap resolution logic.
package pattern

// Match is a half-open byte interval of a single pattern match.
type Match struct {
	// offset of the start byte in the searched text.
	Start int
	// offset of the end byte, exclusive.
	End int
}

// Matcher finds all non-overlapping matches of one compiled pattern.
type Matcher interface {
	// FindAll returns every match the engine finds for this pattern,
	// in left-to-right order, as byte offsets into text.
	FindAll(text string) []Match
}

// Engine compiles pattern expressions into matchers.
type Engine interface {
	Compile(expr string) (Matcher, error)
}
