package lexer

import (
	"strings"

	lexerr "exprlex/pkg/error"
	"exprlex/pkg/types"
)

// StringTokenizer recognizes string literals delimited by ' or ". The
// closing quote must match the opening one.
//
// Escapes: \" \' \\ \s (space) \t \n \r. A backslash before any other
// character is kept as is together with that character. Raw line breaks are
// not allowed inside a literal.
type StringTokenizer struct{}

func (StringTokenizer) Name() string { return "string" }

const opScanString = "ScanString"

var escapes = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
	's':  ' ',
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
}

func (StringTokenizer) Tokenize(r Reader) (Result, error) {
	quote := r.Next()
	if quote == EOF {
		return End(), nil
	}
	if quote != '\'' && quote != '"' {
		return Reject(1), nil
	}
	start := r.Pos()

	var raw, value strings.Builder
	raw.WriteRune(quote)

	for {
		c := r.Next()
		switch {
		case c == EOF:
			return Result{}, unterminated(r, quote, start)
		case c == '\n' || c == '\r':
			return Result{}, failAt(r, lexerr.ErrNewlineInString, opScanString).
				WithHint(`use \n or \r inside string literals`)
		case c == quote:
			raw.WriteRune(c)
			return Accept(NewConstant(types.NewStringField(value.String()), raw.String()), 0), nil
		case c == '\\':
			raw.WriteRune(c)
			e := r.Next()
			if e == EOF {
				return Result{}, unterminated(r, quote, start)
			}
			if e == '\n' || e == '\r' {
				return Result{}, failAt(r, lexerr.ErrNewlineInString, opScanString)
			}
			raw.WriteRune(e)
			if decoded, ok := escapes[e]; ok {
				value.WriteRune(decoded)
			} else {
				value.WriteRune('\\')
				value.WriteRune(e)
			}
		default:
			raw.WriteRune(c)
			value.WriteRune(c)
		}
	}
}

func unterminated(r Reader, quote rune, start Position) error {
	return failAt(r, lexerr.ErrUnterminatedString, opScanString).
		WithDetail("literal opened with %c at line %d, column %d", quote, start.Line, start.Column).
		WithHint("add the closing quote")
}
