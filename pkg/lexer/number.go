package lexer

import (
	"errors"
	"strconv"
	"strings"

	lexerr "exprlex/pkg/error"
	"exprlex/pkg/types"
)

// NumberTokenizer recognizes numeric literals: decimal digits with at most
// one decimal point and an optional type suffix.
//
//	(none)  int32, or float64 when a decimal point is present
//	L       int64 (no decimal point allowed)
//	m, M    decimal
//	f, F    float32
//	d, D    float64
//
// Signs are not part of the literal; -30L lexes as Minus followed by 30L.
type NumberTokenizer struct{}

func (NumberTokenizer) Name() string { return "number" }

const opScanNumber = "ScanNumber"

func (NumberTokenizer) Tokenize(r Reader) (Result, error) {
	c := r.Next()
	if c == EOF {
		return End(), nil
	}
	if !isDigit(c) {
		return Reject(1), nil
	}

	var digits strings.Builder
	digits.WriteRune(c)
	dotSeen := false
	afterDot := false

	for {
		c = r.Next()

		switch {
		case isDigit(c):
			digits.WriteRune(c)
			afterDot = false
			continue
		case c == '.':
			if dotSeen {
				return Result{}, failAt(r, lexerr.ErrMultipleDecimalPoints, opScanNumber).
					WithDetail("%s.", digits.String())
			}
			dotSeen, afterDot = true, true
			digits.WriteRune(c)
			continue
		}

		if afterDot {
			return Result{}, failAt(r, lexerr.ErrDanglingDecimalPoint, opScanNumber).
				WithDetail("%s", digits.String()).
				WithHint("write a digit after the decimal point, e.g. 1.0")
		}

		text := digits.String()
		var (
			field types.Field
			err   error
		)
		pushback := 0

		switch c {
		case 'L':
			if dotSeen {
				return Result{}, failAt(r, lexerr.ErrLongWithDecimalPoint, opScanNumber).
					WithDetail("%sL", text).
					WithHint("use d, f or m for fractional literals")
			}
			field, err = parseInt64(text)
			text += string(c)
		case 'm', 'M':
			field, err = types.ParseDecimalField(text)
			text += string(c)
		case 'f', 'F':
			field, err = parseFloat32(text)
			text += string(c)
		case 'd', 'D':
			field, err = parseFloat64(text)
			text += string(c)
		default:
			// terminator or EOF: no suffix
			if dotSeen {
				field, err = parseFloat64(text)
			} else {
				field, err = parseInt32(text)
			}
			if c != EOF {
				pushback = 1
			}
		}

		if err != nil {
			return Result{}, failAt(r, lexerr.ErrNumberOutOfRange, opScanNumber).
				WithDetail("%s: %v", text, unwrapNumError(err))
		}
		return Accept(NewConstant(field, text), pushback), nil
	}
}

func parseInt32(s string) (types.Field, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}
	return types.NewInt32Field(int32(v)), nil
}

func parseInt64(s string) (types.Field, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return types.NewInt64Field(v), nil
}

func parseFloat32(s string) (types.Field, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return nil, err
	}
	return types.NewFloat32Field(float32(v)), nil
}

func parseFloat64(s string) (types.Field, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return types.NewFloat64Field(v), nil
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
