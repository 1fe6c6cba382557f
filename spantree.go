package gvsyntax

import (
	"cmp"

	"github.com/rdleal/intervalst/interval"
)

// SpanTree stores a highlighting result in an interval tree, letting the
// caller query the spans intersecting an arbitrary range, typically the
// lines being repainted, without scanning the whole result.
type SpanTree struct {
	tree *interval.MultiValueSearchTree[Span, int]
	size int
}

func NewSpanTree() *SpanTree {
	tree := interval.NewMultiValueSearchTree[Span](func(a, b int) int {
		return cmp.Compare(a, b)
	})

	return &SpanTree{
		tree: tree,
	}
}

// Set replaces the stored spans with a new result.
func (t *SpanTree) Set(spans ...Span) {
	t.tree = interval.NewMultiValueSearchTree[Span](func(a, b int) int {
		return cmp.Compare(a, b)
	})
	t.size = 0

	for _, s := range spans {
		if s.End <= s.Start {
			continue
		}
		t.tree.Insert(s.Start, s.End, s)
		t.size++
	}
}

// Query returns all spans intersecting [start, end). start and end are
// byte offsets; start is inclusive and end is exclusive.
func (t *SpanTree) Query(start, end int) []Span {
	if start >= end || t.size == 0 {
		return nil
	}

	all, _ := t.tree.AllIntersections(start, end)
	return all
}

// Len returns the number of stored spans.
func (t *SpanTree) Len() int {
	return t.size
}
