package pattern

import "regexp"

// goEngine compiles patterns with the standard library RE2 engine. It is
// the default engine: linear time on any input, which matters for
// pathological documents.
type goEngine struct{}

// Go returns the standard library regexp backed engine.
func Go() Engine {
	return goEngine{}
}

func (goEngine) Compile(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	return goMatcher{re: re}, nil
}

type goMatcher struct {
	re *regexp.Regexp
}

func (m goMatcher) FindAll(text string) []Match {
	idx := m.re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(idx))
	for _, loc := range idx {
		matches = append(matches, Match{Start: loc[0], End: loc[1]})
	}

	return matches
}
