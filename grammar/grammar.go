// Package grammar declares per-language highlighting vocabularies and a
// registry resolving them by language id or file extension. A Grammar is
// pure data; all behavior lives in the engine that compiles it.
package grammar

// ExtraRule is a grammar supplied pattern with a fixed category, appended
// after the built-in rules in declaration order.
type ExtraRule struct {
	Pattern  string
	Category TokenCategory
}

// Grammar describes one language's highlighting vocabulary. It is
// constructed once at startup and read-only thereafter. Derived languages
// are built by composition: copy a base grammar's word lists and append
// (see Extend), no runtime polymorphism is involved.
type Grammar struct {
	// ID identifies the language, e.g. "python".
	ID          string
	DisplayName string
	// FileExtensions are matched against file names, with the leading dot.
	FileExtensions []string

	// LineComment is the token starting a comment running to end of line.
	// Empty means the language has no line comments.
	LineComment string
	// BlockCommentStart and BlockCommentEnd delimit block comments. Both
	// must be set for block comment rules to be generated.
	BlockCommentStart string
	BlockCommentEnd   string

	Keywords []string
	Types    []string
	Builtins []string

	// StringDelimiters are single-character string quotes. A backslash
	// escapes any character inside the literal, including the delimiter.
	StringDelimiters []rune
	// TemplateStrings enables the backtick template literal rule, which
	// matches across line breaks.
	TemplateStrings bool

	// NumberPattern matches numeric literals. A fixed hexadecimal rule is
	// always added alongside it.
	NumberPattern string

	// PreprocessorPrefix is the token starting a preprocessor directive at
	// the beginning of a line, e.g. "#" for C.
	PreprocessorPrefix string

	// Attributes enables the @word decorator/annotation rule.
	Attributes bool

	ExtraRules []ExtraRule
}

// Extend returns a copy of base with extra words appended. It is the
// composition helper used to derive superset languages from a base one.
func Extend(base []string, extra ...string) []string {
	dest := make([]string, 0, len(base)+len(extra))
	dest = append(dest, base...)
	dest = append(dest, extra...)

	return dest
}

// decimalNumber is the default numeric literal pattern shared by grammars
// without special number syntax.
const decimalNumber = `\b\d+(?:\.\d+)?(?:[eE][+-]?\d+)?\b`
