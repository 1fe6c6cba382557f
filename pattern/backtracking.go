package pattern

import (
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single backtracking search. The engine is only
// safe for interactive use with a hard stop on catastrophic patterns.
const matchTimeout = 200 * time.Millisecond

// backtrackingEngine compiles patterns with regexp2, the backtracking
// engine used by chroma. It supports constructs RE2 rejects, at the cost
// of worst case exponential search time.
type backtrackingEngine struct{}

// Backtracking returns the regexp2 backed engine.
func Backtracking() Engine {
	return backtrackingEngine{}
}

func (backtrackingEngine) Compile(expr string) (Matcher, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = matchTimeout

	return &backtrackingMatcher{re: re}, nil
}

type backtrackingMatcher struct {
	re *regexp2.Regexp
}

// FindAll iterates FindNextMatch and converts regexp2's rune indexed
// results into byte offsets, so both engines report offsets in the same
// coordinate space.
func (m *backtrackingMatcher) FindAll(text string) []Match {
	match, err := m.re.FindStringMatch(text)
	if err != nil || match == nil {
		return nil
	}

	byteOff := runeToByteOffsets(text)

	var matches []Match
	for match != nil {
		start := match.Index
		end := start + match.Length
		if end <= len(byteOff)-1 {
			matches = append(matches, Match{
				Start: byteOff[start],
				End:   byteOff[end],
			})
		}

		match, err = m.re.FindNextMatch(match)
		if err != nil {
			break
		}
	}

	return matches
}

// runeToByteOffsets builds a prefix table mapping rune index i to the byte
// offset of the i-th rune. The last entry is len(text).
func runeToByteOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	return offsets
}
