package gvsyntax

import (
	"slices"
	"sort"
)

// occupiedIndex records the byte ranges already claimed by accepted
// matches, kept sorted by start so candidate overlap is a binary search
// instead of a per-byte marker array. With k accepted ranges each test is
// O(log k), which keeps large documents with many short tokens cheap.
type occupiedIndex struct {
	ranges []TextRange
}

// overlaps reports whether [start, end) intersects any claimed range.
func (x *occupiedIndex) overlaps(start, end int) bool {
	// Find the first claimed range whose End is greater than start.
	// Ranges before it end too early to overlap.
	i := sort.Search(len(x.ranges), func(i int) bool {
		return x.ranges[i].End > start
	})
	if i == len(x.ranges) {
		return false
	}

	return x.ranges[i].Start < end
}

// insert adds [start, end) keeping the ranges sorted by start. The caller
// must have checked overlaps first.
func (x *occupiedIndex) insert(start, end int) {
	i := sort.Search(len(x.ranges), func(i int) bool {
		return x.ranges[i].Start >= start
	})
	x.ranges = slices.Insert(x.ranges, i, TextRange{Start: start, End: end})
}

func (x *occupiedIndex) reset() {
	x.ranges = x.ranges[:0]
}

// tokenize runs every compiled rule over text and greedily assigns
// ownership of byte ranges to the highest priority non-conflicting
// matches. Earlier declared rules win full ownership of any byte they
// claim; a later rule only colors bytes no earlier rule touched. Comment
// and string rules run first, so a keyword inside a comment produces no
// keyword span without any state machine modeling of lexer context.
//
// The returned spans are grouped by rule, each group ascending by start;
// the overall list is not globally sorted. Use SortSpans for callers that
// need ascending order.
func tokenize(text string, rules []compiledRule, occupied *occupiedIndex) []Span {
	if len(rules) == 0 || text == "" {
		return nil
	}

	var spans []Span
	for _, rule := range rules {
		for _, m := range rule.matcher.FindAll(text) {
			if m.Start >= m.End {
				// zero-length match
				continue
			}
			if m.End > len(text) {
				continue
			}
			if occupied.overlaps(m.Start, m.End) {
				continue
			}

			occupied.insert(m.Start, m.End)
			spans = append(spans, Span{
				Start:    m.Start,
				End:      m.End,
				Category: rule.category,
			})
		}
	}

	return spans
}

// SortSpans sorts spans in place by ascending start offset. Tokenization
// results are disjoint, so start order is a total order.
func SortSpans(spans []Span) {
	slices.SortFunc(spans, func(a, b Span) int {
		return a.Start - b.Start
	})
}
