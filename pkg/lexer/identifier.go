package lexer

import (
	"strings"

	"exprlex/pkg/types"
)

// IdentifierTokenizer recognizes names: a letter or underscore followed by
// letters, digits and underscores. The words true, false and null, in any
// case, are recognized as constants instead.
type IdentifierTokenizer struct{}

func (IdentifierTokenizer) Name() string { return "identifier" }

func (IdentifierTokenizer) Tokenize(r Reader) (Result, error) {
	c := r.Next()
	if c == EOF {
		return End(), nil
	}
	if !isIdentStart(c) {
		return Reject(1), nil
	}

	var b strings.Builder
	b.WriteRune(c)
	for {
		c = r.Next()
		if c == EOF {
			return Accept(identifierToken(b.String()), 0), nil
		}
		if !isIdentPart(c) {
			return Accept(identifierToken(b.String()), 1), nil
		}
		b.WriteRune(c)
	}
}

func identifierToken(name string) Token {
	switch {
	case strings.EqualFold(name, "true"):
		return NewConstant(types.NewBoolField(true), name)
	case strings.EqualFold(name, "false"):
		return NewConstant(types.NewBoolField(false), name)
	case strings.EqualFold(name, "null"):
		return NewConstant(types.Null, name)
	default:
		return NewIdentifier(name)
	}
}
