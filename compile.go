package gvsyntax

import (
	"regexp"
	"strings"

	"github.com/oligo/gvsyntax/grammar"
	"github.com/oligo/gvsyntax/pattern"
)

// compiledRule pairs one compiled matcher with the token category its
// matches produce. The index of a rule in the containing list is its
// priority: index 0 is highest, and a later rule can never claim text
// already claimed by an earlier one.
type compiledRule struct {
	matcher  pattern.Matcher
	category grammar.TokenCategory
}

// hexNumber matches hexadecimal literals regardless of the grammar's own
// number pattern.
const hexNumber = `\b0[xX][0-9a-fA-F_]+\b`

// tripleQuoted matches Python style triple-quoted literals, including
// embedded newlines, shortest match.
const tripleQuoted = `(?s)""".*?"""|(?s)'''.*?'''`

// templateString matches backtick delimited template literals across line
// breaks, honoring backslash escapes.
const templateString = "(?s)`(?:[^`\\\\]|\\\\.)*`"

// attributeRule matches @word decorators/annotations.
const attributeRule = `@\w+\b`

// compileRules turns a grammar into the ordered rule list the tokenizer
// runs. Rule construction order is fixed and significant, comments and
// strings first, so that their matches shadow everything inside them
// without any explicit lexer state.
//
// A pattern that fails to compile is dropped and the remaining rules still
// apply: one bad rule must not disable highlighting for a whole language.
func compileRules(g *grammar.Grammar, eng pattern.Engine) []compiledRule {
	if g == nil {
		return nil
	}

	var rules []compiledRule
	add := func(expr string, cat grammar.TokenCategory) {
		m, err := eng.Compile(expr)
		if err != nil {
			logger.Debug("dropping malformed pattern",
				"language", g.ID, "category", cat.String(), "error", err)
			return
		}
		rules = append(rules, compiledRule{matcher: m, category: cat})
	}

	if g.BlockCommentStart != "" && g.BlockCommentEnd != "" {
		add(`(?s)`+regexp.QuoteMeta(g.BlockCommentStart)+`.*?`+regexp.QuoteMeta(g.BlockCommentEnd), grammar.Comment)
	}
	if g.LineComment != "" {
		add(regexp.QuoteMeta(g.LineComment)+`[^\n]*`, grammar.Comment)
	}

	// The triple-quote rule must precede the single-character delimiter
	// rules so it wins priority when both could match the same text.
	if hasDelimiter(g, '"') {
		add(tripleQuoted, grammar.String)
	}
	for _, delim := range g.StringDelimiters {
		add(stringPattern(delim), grammar.String)
	}
	if g.TemplateStrings {
		add(templateString, grammar.String)
	}

	if g.PreprocessorPrefix != "" {
		add(`(?m)^[ \t]*`+regexp.QuoteMeta(g.PreprocessorPrefix)+`\w+[^\n]*`, grammar.Preprocessor)
	}

	if g.NumberPattern != "" {
		add(g.NumberPattern, grammar.Number)
	}
	add(hexNumber, grammar.Number)

	if len(g.Types) > 0 {
		add(wordAlternation(g.Types), grammar.Type)
	}
	if len(g.Keywords) > 0 {
		add(wordAlternation(g.Keywords), grammar.Keyword)
	}
	if len(g.Builtins) > 0 {
		add(wordAlternation(g.Builtins), grammar.Function)
	}

	for _, extra := range g.ExtraRules {
		add(extra.Pattern, extra.Category)
	}

	if g.Attributes {
		add(attributeRule, grammar.Attribute)
	}

	return rules
}

// stringPattern builds the literal pattern for one delimiter: from the
// delimiter to the next unescaped occurrence of the same delimiter, with a
// backslash escaping any character, and no embedded newlines.
func stringPattern(delim rune) string {
	d := regexp.QuoteMeta(string(delim))
	return d + `(?:[^` + classEscape(delim) + `\\\n]|\\.)*` + d
}

// classEscape escapes a delimiter for use inside a character class.
func classEscape(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return `\` + string(r)
	default:
		return string(r)
	}
}

// wordAlternation joins words into a single word-boundary guarded
// alternation pattern.
func wordAlternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(w))
	}

	return `\b(?:` + strings.Join(quoted, `|`) + `)\b`
}

func hasDelimiter(g *grammar.Grammar, delim rune) bool {
	for _, d := range g.StringDelimiters {
		if d == delim {
			return true
		}
	}

	return false
}
