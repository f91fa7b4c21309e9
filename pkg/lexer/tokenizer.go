package lexer

import (
	"unicode"

	lexerr "exprlex/pkg/error"
)

// Tokenizer recognizes one category of token at the current position.
//
// Implementations must not keep per-call state: a Lexer shares its
// tokenizers between every Scanner it creates.
type Tokenizer interface {
	// Name identifies the tokenizer in errors and logs.
	Name() string
	// Tokenize reads from r and decides. A non-nil error is fatal to the scan.
	Tokenize(r Reader) (Result, error)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// failAt builds an error from a sentinel located at the reader's last character.
func failAt(r Reader, sentinel *lexerr.LexError, operation string) *lexerr.LexError {
	p := r.Pos()
	err := lexerr.From(sentinel).At(p.Offset, p.Line, p.Column)
	err.Operation = operation
	return err
}
