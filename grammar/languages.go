package grammar

// Built-in grammars. Each is constructed once by Builtin and registered in
// the default registry. Derived languages (cpp, typescript) copy and
// append the base language's word lists rather than referencing them, so
// every Grammar stays self contained.

var cKeywords = []string{
	"auto", "break", "case", "const", "continue", "default", "do",
	"else", "enum", "extern", "for", "goto", "if", "inline", "register",
	"restrict", "return", "sizeof", "static", "struct", "switch",
	"typedef", "union", "volatile", "while",
}

var cTypes = []string{
	"char", "double", "float", "int", "long", "short", "signed",
	"unsigned", "void", "_Bool", "size_t", "ssize_t", "int8_t", "int16_t",
	"int32_t", "int64_t", "uint8_t", "uint16_t", "uint32_t", "uint64_t",
}

var jsKeywords = []string{
	"async", "await", "break", "case", "catch", "class", "const",
	"continue", "debugger", "default", "delete", "do", "else", "export",
	"extends", "finally", "for", "function", "if", "import", "in",
	"instanceof", "let", "new", "of", "return", "static", "super",
	"switch", "this", "throw", "try", "typeof", "var", "void", "while",
	"with", "yield",
}

var jsBuiltins = []string{
	"Array", "Boolean", "Date", "Error", "JSON", "Map", "Math", "Number",
	"Object", "Promise", "Proxy", "Reflect", "RegExp", "Set", "String",
	"Symbol", "console", "document", "window", "parseFloat", "parseInt",
	"isNaN", "fetch", "setTimeout", "setInterval", "clearTimeout",
}

func python() *Grammar {
	return &Grammar{
		ID:             "python",
		DisplayName:    "Python",
		FileExtensions: []string{".py", ".pyw", ".pyi"},
		LineComment:    "#",
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class",
			"continue", "def", "del", "elif", "else", "except", "finally",
			"for", "from", "global", "if", "import", "in", "is", "lambda",
			"nonlocal", "not", "or", "pass", "raise", "return", "try",
			"while", "with", "yield", "True", "False", "None",
		},
		Types: []string{
			"int", "float", "complex", "str", "bytes", "bytearray", "bool",
			"list", "tuple", "dict", "set", "frozenset", "object",
		},
		Builtins: []string{
			"abs", "all", "any", "callable", "chr", "dir", "divmod",
			"enumerate", "filter", "format", "getattr", "hasattr", "hash",
			"hex", "id", "input", "isinstance", "issubclass", "iter",
			"len", "map", "max", "min", "next", "open", "ord", "print",
			"range", "repr", "reversed", "round", "setattr", "sorted",
			"sum", "super", "type", "vars", "zip",
		},
		StringDelimiters: []rune{'"', '\''},
		NumberPattern:    `\b\d+(?:\.\d+)?(?:[eE][+-]?\d+)?[jJ]?\b`,
		Attributes:       true,
	}
}

func golang() *Grammar {
	return &Grammar{
		ID:                "go",
		DisplayName:       "Go",
		FileExtensions:    []string{".go"},
		LineComment:       "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default",
			"defer", "else", "fallthrough", "for", "func", "go", "goto",
			"if", "import", "interface", "map", "package", "range",
			"return", "select", "struct", "switch", "type", "var",
			"nil", "true", "false", "iota",
		},
		Types: []string{
			"bool", "byte", "complex64", "complex128", "error", "float32",
			"float64", "int", "int8", "int16", "int32", "int64", "rune",
			"string", "uint", "uint8", "uint16", "uint32", "uint64",
			"uintptr", "any",
		},
		Builtins: []string{
			"append", "cap", "clear", "close", "complex", "copy", "delete",
			"imag", "len", "make", "max", "min", "new", "panic", "print",
			"println", "real", "recover",
		},
		StringDelimiters: []rune{'"', '\''},
		TemplateStrings:  true,
		NumberPattern:    `\b\d[\d_]*(?:\.\d+)?(?:[eE][+-]?\d+)?i?\b`,
	}
}

func c() *Grammar {
	return &Grammar{
		ID:                "c",
		DisplayName:       "C",
		FileExtensions:    []string{".c", ".h"},
		LineComment:       "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Keywords:          cKeywords,
		Types:             cTypes,
		Builtins: []string{
			"printf", "fprintf", "sprintf", "snprintf", "scanf", "malloc",
			"calloc", "realloc", "free", "memcpy", "memmove", "memset",
			"strlen", "strcmp", "strncmp", "strcpy", "strncpy", "strcat",
			"fopen", "fclose", "fread", "fwrite", "exit", "abort",
		},
		StringDelimiters:   []rune{'"', '\''},
		NumberPattern:      `\b\d+(?:\.\d+)?(?:[eE][+-]?\d+)?[uUlLfF]*\b`,
		PreprocessorPrefix: "#",
	}
}

func cpp() *Grammar {
	base := c()

	return &Grammar{
		ID:                "cpp",
		DisplayName:       "C++",
		FileExtensions:    []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		LineComment:       base.LineComment,
		BlockCommentStart: base.BlockCommentStart,
		BlockCommentEnd:   base.BlockCommentEnd,
		Keywords: Extend(base.Keywords,
			"catch", "class", "constexpr", "decltype", "delete",
			"explicit", "final", "friend", "mutable", "namespace", "new",
			"noexcept", "nullptr", "operator", "override", "private",
			"protected", "public", "template", "this", "throw", "try",
			"typename", "using", "virtual",
		),
		Types: Extend(base.Types,
			"auto", "wchar_t", "string", "vector", "map", "set",
			"unordered_map", "unique_ptr", "shared_ptr",
		),
		Builtins:           Extend(base.Builtins, "cout", "cin", "cerr", "endl", "move", "forward"),
		StringDelimiters:   base.StringDelimiters,
		NumberPattern:      base.NumberPattern,
		PreprocessorPrefix: base.PreprocessorPrefix,
	}
}

func javascript() *Grammar {
	return &Grammar{
		ID:                "javascript",
		DisplayName:       "JavaScript",
		FileExtensions:    []string{".js", ".mjs", ".cjs", ".jsx"},
		LineComment:       "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Keywords:          jsKeywords,
		Builtins:          jsBuiltins,
		StringDelimiters:  []rune{'"', '\''},
		TemplateStrings:   true,
		NumberPattern:     decimalNumber,
	}
}

func typescript() *Grammar {
	base := javascript()

	return &Grammar{
		ID:                "typescript",
		DisplayName:       "TypeScript",
		FileExtensions:    []string{".ts", ".tsx", ".mts"},
		LineComment:       base.LineComment,
		BlockCommentStart: base.BlockCommentStart,
		BlockCommentEnd:   base.BlockCommentEnd,
		Keywords: Extend(base.Keywords,
			"abstract", "as", "declare", "enum", "implements",
			"interface", "is", "keyof", "namespace", "private",
			"protected", "public", "readonly", "satisfies", "type",
		),
		Types: []string{
			"any", "bigint", "boolean", "never", "null", "number",
			"object", "string", "symbol", "undefined", "unknown", "void",
		},
		Builtins:         base.Builtins,
		StringDelimiters: base.StringDelimiters,
		TemplateStrings:  true,
		NumberPattern:    base.NumberPattern,
		Attributes:       true,
	}
}

func rust() *Grammar {
	return &Grammar{
		ID:                "rust",
		DisplayName:       "Rust",
		FileExtensions:    []string{".rs"},
		LineComment:       "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Keywords: []string{
			"as", "async", "await", "break", "const", "continue", "crate",
			"dyn", "else", "enum", "extern", "fn", "for", "if", "impl",
			"in", "let", "loop", "match", "mod", "move", "mut", "pub",
			"ref", "return", "self", "static", "struct", "super", "trait",
			"type", "unsafe", "use", "where", "while", "true", "false",
		},
		Types: []string{
			"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64",
			"i128", "isize", "str", "u8", "u16", "u32", "u64", "u128",
			"usize", "String", "Vec", "Option", "Result", "Box", "Rc",
			"Arc", "HashMap", "HashSet",
		},
		Builtins: []string{
			"println", "print", "eprintln", "format", "panic", "vec",
			"assert", "assert_eq", "assert_ne", "todo", "unimplemented",
		},
		StringDelimiters: []rune{'"', '\''},
		NumberPattern:    `\b\d[\d_]*(?:\.\d+)?(?:[eE][+-]?\d+)?(?:[iuf](?:8|16|32|64|128|size)?)?\b`,
		ExtraRules: []ExtraRule{
			// lifetime annotations
			{Pattern: `'\w+\b`, Category: Attribute},
		},
	}
}

func shell() *Grammar {
	return &Grammar{
		ID:             "shell",
		DisplayName:    "Shell",
		FileExtensions: []string{".sh", ".bash", ".zsh"},
		LineComment:    "#",
		Keywords: []string{
			"if", "then", "elif", "else", "fi", "for", "while", "until",
			"do", "done", "case", "esac", "function", "in", "select",
			"time", "return", "break", "continue", "local", "export",
			"readonly", "declare", "unset", "shift", "exit", "trap",
		},
		Builtins: []string{
			"echo", "printf", "read", "cd", "pwd", "test", "source",
			"eval", "exec", "set", "alias", "type", "command", "wait",
			"kill", "jobs", "fg", "bg",
		},
		StringDelimiters: []rune{'"', '\''},
		TemplateStrings:  true,
		NumberPattern:    decimalNumber,
		ExtraRules: []ExtraRule{
			// $VAR and ${VAR} expansions
			{Pattern: `\$\{[^}\n]*\}|\$\w+`, Category: Variable},
		},
	}
}

// Builtin returns freshly constructed instances of every built-in grammar.
func Builtin() []*Grammar {
	return []*Grammar{
		python(),
		golang(),
		c(),
		cpp(),
		javascript(),
		typescript(),
		rust(),
		shell(),
	}
}
