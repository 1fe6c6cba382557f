package grammar

// TokenCategory classifies a highlighted span. It is a closed enumeration
// used only as a lookup key into a theme's color table.
type TokenCategory uint8

const (
	Plain TokenCategory = iota
	Keyword
	String
	Comment
	Number
	Type
	Function
	Operator
	Preprocessor
	Attribute
	Variable

	numCategories
)

// NumCategories is the number of token categories, for sizing color tables.
const NumCategories = int(numCategories)

func (c TokenCategory) String() string {
	switch c {
	case Plain:
		return "plain"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Type:
		return "type"
	case Function:
		return "function"
	case Operator:
		return "operator"
	case Preprocessor:
		return "preprocessor"
	case Attribute:
		return "attribute"
	case Variable:
		return "variable"
	default:
		return "unknown"
	}
}
