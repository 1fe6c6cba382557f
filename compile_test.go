package gvsyntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/pattern"
	"github.com/oligo/gvsyntax/textstyle"
)

func fullGrammar() *grammar.Grammar {
	return &grammar.Grammar{
		ID:                 "full",
		LineComment:        "//",
		BlockCommentStart:  "/*",
		BlockCommentEnd:    "*/",
		Keywords:           []string{"if", "else"},
		Types:              []string{"int"},
		Builtins:           []string{"print"},
		StringDelimiters:   []rune{'"', '\''},
		TemplateStrings:    true,
		NumberPattern:      `\b\d+\b`,
		PreprocessorPrefix: "#",
		Attributes:         true,
		ExtraRules: []grammar.ExtraRule{
			{Pattern: `\$\w+`, Category: grammar.Variable},
		},
	}
}

func TestCompileRuleOrder(t *testing.T) {
	rules := compileRules(fullGrammar(), pattern.Go())

	categories := make([]grammar.TokenCategory, 0, len(rules))
	for _, r := range rules {
		categories = append(categories, r.category)
	}

	want := []grammar.TokenCategory{
		grammar.Comment, // block
		grammar.Comment, // line
		grammar.String,  // triple-quoted, before the delimiter rules
		grammar.String,  // "
		grammar.String,  // '
		grammar.String,  // template
		grammar.Preprocessor,
		grammar.Number, // grammar pattern
		grammar.Number, // hex
		grammar.Type,
		grammar.Keyword,
		grammar.Function,
		grammar.Variable, // extra rule
		grammar.Attribute,
	}
	assert.Equal(t, want, categories)
}

func TestCompileNilGrammar(t *testing.T) {
	assert.Empty(t, compileRules(nil, pattern.Go()))
}

func TestCompileSkipsEmptySections(t *testing.T) {
	g := &grammar.Grammar{ID: "tiny", LineComment: "#"}
	rules := compileRules(g, pattern.Go())

	// line comment plus the fixed hex rule only
	require.Len(t, rules, 2)
	assert.Equal(t, grammar.Comment, rules[0].category)
	assert.Equal(t, grammar.Number, rules[1].category)
}

func TestMalformedPatternDropped(t *testing.T) {
	g := fullGrammar()
	g.NumberPattern = `[unclosed`
	g.ExtraRules = []grammar.ExtraRule{
		{Pattern: `(`, Category: grammar.Variable},
		{Pattern: `\$\w+`, Category: grammar.Variable},
	}

	rules := compileRules(g, pattern.Go())

	var keywords, variables int
	for _, r := range rules {
		switch r.category {
		case grammar.Keyword:
			keywords++
		case grammar.Variable:
			variables++
		}
	}

	// One bad rule never disables the rest of the grammar.
	assert.Equal(t, 1, keywords)
	assert.Equal(t, 1, variables, "only the well-formed extra rule survives")
}

func TestTripleQuoteWinsOverDelimiters(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(fullGrammar())

	text := `"""a "quoted" body"""`
	spans, ok := e.HighlightDocument(text, textstyle.Light, false)
	require.True(t, ok)
	require.Len(t, spans, 1)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, len(text), spans[0].End)
	assert.Equal(t, grammar.String, spans[0].Category)
}

func TestStringEscapeHandling(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(fullGrammar())

	// The escaped delimiter must not terminate the literal.
	text := `"a\"b" else`
	spans, ok := e.HighlightDocument(text, textstyle.Light, false)
	require.True(t, ok)
	SortSpans(spans)

	require.Len(t, spans, 2)
	assert.Equal(t, grammar.String, spans[0].Category)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 6, spans[0].End)
	assert.Equal(t, grammar.Keyword, spans[1].Category)
}

func TestStringExcludesNewline(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(fullGrammar())

	// An unterminated quote must not swallow the next line.
	text := "\"abc\nif"
	spans, ok := e.HighlightDocument(text, textstyle.Light, false)
	require.True(t, ok)
	SortSpans(spans)

	for _, s := range spans {
		if s.Category == grammar.String {
			t.Fatalf("unterminated quote produced a string span %+v", s)
		}
	}
}

func TestBlockCommentNonGreedy(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(fullGrammar())

	text := `/* a */ if /* b */`
	spans, ok := e.HighlightDocument(text, textstyle.Light, false)
	require.True(t, ok)
	SortSpans(spans)

	require.Len(t, spans, 3)
	assert.Equal(t, grammar.Comment, spans[0].Category)
	assert.Equal(t, 7, spans[0].End, "first comment must stop at the first terminator")
	assert.Equal(t, grammar.Keyword, spans[1].Category)
	assert.Equal(t, grammar.Comment, spans[2].Category)
}

func TestPreprocessorRule(t *testing.T) {
	e := NewEngine()
	e.SetLanguage(fullGrammar())

	text := "#include <stdio.h>\nif x"
	spans, ok := e.HighlightDocument(text, textstyle.Light, false)
	require.True(t, ok)
	SortSpans(spans)

	require.NotEmpty(t, spans)
	assert.Equal(t, grammar.Preprocessor, spans[0].Category)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 18, spans[0].End)
}
