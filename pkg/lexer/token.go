package lexer

import (
	"encoding/json"
	"fmt"

	"exprlex/pkg/types"
)

// Kind classifies a Token.
type Kind int

const (
	IdentifierKind Kind = iota
	ConstantKind
	SymbolKind
	KeywordKind
)

func (k Kind) String() string {
	switch k {
	case IdentifierKind:
		return "Identifier"
	case ConstantKind:
		return "Constant"
	case SymbolKind:
		return "Symbol"
	case KeywordKind:
		return "Keyword"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position locates a character in the input. Offset counts runes from the
// start; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is an immutable classified fragment of the input.
type Token struct {
	Kind Kind

	// Text is the source text of the token as written, including quotes,
	// escapes and numeric suffixes.
	Text string

	// Canon is the configured spelling of a keyword; empty for other kinds.
	Canon string

	// Symbol is set when Kind is SymbolKind.
	Symbol Symbol

	// Constant is set when Kind is ConstantKind.
	Constant types.Field

	// Pos is the position of the first character; End is the position just
	// past the last one. Both are filled in by the Scanner.
	Pos Position
	End Position
}

// NewIdentifier returns an identifier token.
func NewIdentifier(name string) Token {
	return Token{Kind: IdentifierKind, Text: name}
}

// NewConstant returns a constant token with its source text.
func NewConstant(c types.Field, text string) Token {
	return Token{Kind: ConstantKind, Text: text, Constant: c}
}

// NewSymbol returns a symbol token spelled canonically.
func NewSymbol(s Symbol) Token {
	return Token{Kind: SymbolKind, Text: s.Spelling(), Symbol: s}
}

// NewKeyword returns a keyword token; text is the source spelling and canon
// the configured one.
func NewKeyword(text, canon string) Token {
	return Token{Kind: KeywordKind, Text: text, Canon: canon}
}

// Is reports whether t is the symbol s.
func (t Token) Is(s Symbol) bool {
	return t.Kind == SymbolKind && t.Symbol == s
}

// IsKeyword reports whether t is a keyword whose configured spelling is word.
func (t Token) IsKeyword(word string) bool {
	return t.Kind == KeywordKind && t.Canon == word
}

// Value returns the token's semantic value: the name for identifiers and
// keywords, the Symbol for symbols and the Go payload for constants.
func (t Token) Value() any {
	switch t.Kind {
	case SymbolKind:
		return t.Symbol
	case ConstantKind:
		if t.Constant == nil {
			return nil
		}
		return t.Constant.Value()
	default:
		return t.Text
	}
}

// Equal compares kind and value, ignoring positions and source text of
// constants (so 2f equals 2.0f).
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case SymbolKind:
		return t.Symbol == o.Symbol
	case ConstantKind:
		if t.Constant == nil || o.Constant == nil {
			return t.Constant == o.Constant
		}
		return t.Constant.Equals(o.Constant)
	default:
		return t.Text == o.Text
	}
}

func (t Token) String() string {
	switch t.Kind {
	case SymbolKind:
		return fmt.Sprintf("Symbol(%s)", t.Symbol)
	case ConstantKind:
		if t.Constant == nil {
			return "Constant(?)"
		}
		if t.Constant.Type() == types.NullType {
			return "Constant(Null)"
		}
		return fmt.Sprintf("Constant(%s=%v)", constantName(t.Constant.Type()), t.Constant.Value())
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

func constantName(t types.Type) string {
	switch t {
	case types.Int32Type:
		return "Int32"
	case types.Int64Type:
		return "Int64"
	case types.Float32Type:
		return "Float32"
	case types.Float64Type:
		return "Float64"
	case types.DecimalType:
		return "Decimal"
	case types.StringType:
		return "String"
	case types.BoolType:
		return "Boolean"
	case types.NullType:
		return "Null"
	default:
		return t.String()
	}
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Symbol string `json:"symbol,omitempty"`
	Canon  string `json:"canon,omitempty"`
	Type   string `json:"type,omitempty"`
	Value  any    `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

// MarshalJSON encodes the token for machine consumption. Decimal values are
// encoded as strings so no precision is lost.
func (t Token) MarshalJSON() ([]byte, error) {
	jt := jsonToken{
		Kind:   t.Kind.String(),
		Text:   t.Text,
		Canon:  t.Canon,
		Line:   t.Pos.Line,
		Column: t.Pos.Column,
		Offset: t.Pos.Offset,
	}
	switch t.Kind {
	case SymbolKind:
		jt.Symbol = t.Symbol.String()
	case ConstantKind:
		if t.Constant != nil {
			jt.Type = constantName(t.Constant.Type())
			jt.Value = t.Constant.Value()
			if t.Constant.Type() == types.DecimalType {
				jt.Value = t.Constant.(*types.DecimalField).Val.String()
			}
		}
	}
	return json.Marshal(jt)
}
