package lexer

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lexerr "exprlex/pkg/error"
	"exprlex/pkg/types"
)

func i32(v int32) Token { return NewConstant(types.NewInt32Field(v), "") }
func i64(v int64) Token { return NewConstant(types.NewInt64Field(v), "") }
func f32(v float32) Token { return NewConstant(types.NewFloat32Field(v), "") }
func f64(v float64) Token { return NewConstant(types.NewFloat64Field(v), "") }
func str(v string) Token { return NewConstant(types.NewStringField(v), "") }
func boolean(v bool) Token { return NewConstant(types.NewBoolField(v), "") }
func ident(name string) Token { return NewIdentifier(name) }
func sym(s Symbol) Token { return NewSymbol(s) }
func kw(text string) Token { return NewKeyword(text, "") }
func null() Token { return NewConstant(types.Null, "") }
func dec(digits string) Token {
	return NewConstant(types.NewDecimalField(decimal.RequireFromString(digits)), "")
}

func assertTokens(t *testing.T, expected, actual []Token) {
	t.Helper()
	require.Len(t, actual, len(expected), "tokens: %v", actual)
	for i := range expected {
		assert.True(t, expected[i].Equal(actual[i]), "token %d: expected %s, got %s", i, expected[i], actual[i])
	}
}

func TestTokenize_MixedExpression(t *testing.T) {
	t.Parallel()

	input := "1+2f\t_abc123'text\\'suffix'\t-30L*4.5 / 5.5m (true || FALSE?yes:no)null??nothing"
	tokens, err := New().Tokenize(input)
	require.NoError(t, err)

	assertTokens(t, []Token{
		i32(1), sym(Plus), f32(2), ident("_abc123"), str("text'suffix"),
		sym(Minus), i64(30), sym(Multiply), f64(4.5), sym(Divide), dec("5.5"),
		sym(OpeningParenthesis), boolean(true), sym(OrElse), boolean(false),
		sym(Question), ident("yes"), sym(Colon), ident("no"), sym(ClosingParenthesis),
		null(), sym(Coalesce), ident("nothing"),
	}, tokens)

	// constant subtypes are exact, not just equal in value
	assert.Equal(t, types.Float32Type, tokens[2].Constant.Type())
	assert.Equal(t, types.Int64Type, tokens[6].Constant.Type())
	assert.Equal(t, types.DecimalType, tokens[10].Constant.Type())
	assert.Equal(t, "FALSE", tokens[14].Text)
}

func TestTokenize_InjectedKeywords(t *testing.T) {
	t.Parallel()

	lx := New(WithKeywords(true, "in", "Between"))
	input := `Field1 == 100 && Field2<1.23f && Field3 >=10.5m && (PI between "3.1415926~3.1415927" || Number IN [10,20,30] )`
	tokens, err := lx.Tokenize(input)
	require.NoError(t, err)

	assertTokens(t, []Token{
		ident("Field1"), sym(Equal), i32(100), sym(AndAlso),
		ident("Field2"), sym(LessThan), f32(1.23), sym(AndAlso),
		ident("Field3"), sym(GreaterThanOrEqual), dec("10.5"), sym(AndAlso),
		sym(OpeningParenthesis), ident("PI"), kw("between"), str("3.1415926~3.1415927"),
		sym(OrElse), ident("Number"), kw("IN"), sym(OpeningBracket),
		i32(10), sym(Comma), i32(20), sym(Comma), i32(30), sym(ClosingBracket),
		sym(ClosingParenthesis),
	}, tokens)

	assert.Equal(t, "Between", tokens[14].Canon)
	assert.True(t, tokens[14].IsKeyword("Between"))
	assert.Equal(t, "in", tokens[18].Canon)
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected *lexerr.LexError
		line     int
		column   int
	}{
		{"unterminated string", `"`, lexerr.ErrUnterminatedString, 1, 2},
		{"unterminated after escape", `'abc\`, lexerr.ErrUnterminatedString, 1, 6},
		{"multiple decimal points", "1.2.3", lexerr.ErrMultipleDecimalPoints, 1, 4},
		{"long with decimal point", "1.5L", lexerr.ErrLongWithDecimalPoint, 1, 4},
		{"dangling decimal point", "x = 1.+2", lexerr.ErrDanglingDecimalPoint, 1, 7},
		{"dangling decimal at end", "1.", lexerr.ErrDanglingDecimalPoint, 1, 3},
		{"suffix after bare point", "1.f", lexerr.ErrDanglingDecimalPoint, 1, 3},
		{"newline in string", "'ab\ncd'", lexerr.ErrNewlineInString, 1, 4},
		{"carriage return in string", "\"ab\rcd\"", lexerr.ErrNewlineInString, 1, 4},
		{"unrecognized", "a # b", lexerr.ErrUnrecognizedToken, 1, 3},
		{"int32 overflow", "2147483648", lexerr.ErrNumberOutOfRange, 1, 11},
		{"int64 overflow", "9223372036854775808L", lexerr.ErrNumberOutOfRange, 1, 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New().Tokenize(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var lexErr *lexerr.LexError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.line, lexErr.Line, "line")
			assert.Equal(t, tt.column, lexErr.Column, "column")
		})
	}
}

func TestScan_ErrorIsSticky(t *testing.T) {
	t.Parallel()

	sc := New().ScanString("a 1.2.3 b")
	tok, err := sc.Scan()
	require.NoError(t, err)
	assert.True(t, tok.Equal(ident("a")))

	_, err = sc.Scan()
	require.ErrorIs(t, err, lexerr.ErrMultipleDecimalPoints)

	_, again := sc.Scan()
	assert.Same(t, err, again)
	assert.Equal(t, err, sc.Err())
}

func TestScan_EndOfInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\t\r\n"} {
		sc := New().ScanString(input)
		_, err := sc.Scan()
		assert.Equal(t, io.EOF, err, "input %q", input)
		_, err = sc.Scan()
		assert.Equal(t, io.EOF, err, "input %q", input)
	}
}

func TestScan_Positions(t *testing.T) {
	t.Parallel()

	tokens, err := New().Tokenize("a + bb\n  'x'")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, Position{Offset: 1, Line: 1, Column: 2}, tokens[0].End)

	// the separator after + is dropped by the symbol tokenizer but not
	// counted in the token's extent
	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, tokens[1].Pos)
	assert.Equal(t, Position{Offset: 3, Line: 1, Column: 4}, tokens[1].End)

	assert.Equal(t, Position{Offset: 4, Line: 1, Column: 5}, tokens[2].Pos)
	assert.Equal(t, Position{Offset: 6, Line: 1, Column: 7}, tokens[2].End)

	assert.Equal(t, Position{Offset: 9, Line: 2, Column: 3}, tokens[3].Pos)
	assert.Equal(t, Position{Offset: 12, Line: 2, Column: 6}, tokens[3].End)
	assert.Equal(t, "'x'", tokens[3].Text)
}

func TestIdentifierExactness(t *testing.T) {
	t.Parallel()

	lx := New()
	for _, name := range []string{"a", "_", "_abc123", "Field1", "x_y_z", "ÜberName", "nothing", "nullable", "trueish"} {
		sc := lx.ScanString(name + " ")
		tok, err := sc.Scan()
		require.NoError(t, err, name)
		assert.Equal(t, IdentifierKind, tok.Kind, name)
		assert.Equal(t, name, tok.Text, name)
		assert.Equal(t, len([]rune(name)), tok.End.Offset, name)

		_, err = sc.Scan()
		assert.Equal(t, io.EOF, err, name)
	}
}

func TestNumericTypeFidelity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected types.Type
		value    any
	}{
		{"7", types.Int32Type, int32(7)},
		{"7.25", types.Float64Type, 7.25},
		{"7L", types.Int64Type, int64(7)},
		{"7m", types.DecimalType, nil},
		{"7.25M", types.DecimalType, nil},
		{"7f", types.Float32Type, float32(7)},
		{"7.25F", types.Float32Type, float32(7.25)},
		{"7d", types.Float64Type, float64(7)},
		{"7.25D", types.Float64Type, 7.25},
		{"007", types.Int32Type, int32(7)},
	}

	for _, tt := range tests {
		tokens, err := New().Tokenize(tt.input)
		require.NoError(t, err, tt.input)
		require.Len(t, tokens, 1, tt.input)
		assert.Equal(t, tt.expected, tokens[0].Constant.Type(), tt.input)
		assert.Equal(t, tt.input, tokens[0].Text)
		if tt.value != nil {
			assert.Equal(t, tt.value, tokens[0].Value(), tt.input)
		}
	}
}

func TestNumberTerminators(t *testing.T) {
	t.Parallel()

	tokens, err := New().Tokenize("12abc 3)")
	require.NoError(t, err)
	assertTokens(t, []Token{i32(12), ident("abc"), i32(3), sym(ClosingParenthesis)}, tokens)
}

func TestStringEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{`'text\'suffix'`, "text'suffix"},
		{`"say \"hi\""`, `say "hi"`},
		{`'a\\b'`, `a\b`},
		{`'a\sb'`, "a b"},
		{`'a\tb'`, "a\tb"},
		{`'a\nb'`, "a\nb"},
		{`'a\rb'`, "a\rb"},
		{`'mixed " quote'`, `mixed " quote`},
		{`"it's"`, "it's"},
		{`'\x41'`, `\x41`},
		{`''`, ""},
	}

	for _, tt := range tests {
		tokens, err := New().Tokenize(tt.input)
		require.NoError(t, err, tt.input)
		require.Len(t, tokens, 1, tt.input)
		assert.Equal(t, types.StringType, tokens[0].Constant.Type(), tt.input)
		assert.Equal(t, tt.expected, tokens[0].Value(), tt.input)
		assert.Equal(t, tt.input, tokens[0].Text)
	}
}

func TestLongestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []Token
	}{
		{"a&&b", []Token{ident("a"), sym(AndAlso), ident("b")}},
		{"a&b", []Token{ident("a"), sym(And), ident("b")}},
		{"a>=b", []Token{ident("a"), sym(GreaterThanOrEqual), ident("b")}},
		{"a> =b", []Token{ident("a"), sym(GreaterThan), sym(Assign), ident("b")}},
		{"a==b", []Token{ident("a"), sym(Equal), ident("b")}},
		{"a=b", []Token{ident("a"), sym(Assign), ident("b")}},
		{"a???b", []Token{ident("a"), sym(Coalesce), sym(Question), ident("b")}},
		{"!a!=b", []Token{sym(Not), ident("a"), sym(NotEqual), ident("b")}},
		{"a||", []Token{ident("a"), sym(OrElse)}},
		{"<", []Token{sym(LessThan)}},
	}

	for _, tt := range tests {
		tokens, err := New().Tokenize(tt.input)
		require.NoError(t, err, tt.input)
		assertTokens(t, tt.expected, tokens)
	}
}

func TestKeywordInjectionLocality(t *testing.T) {
	t.Parallel()

	plain := New()
	withKeywords := New(WithKeywords(true, "in", "between"))

	input := "inside in IN between betweenish bet index In_ x in"
	before, err := plain.Tokenize(input)
	require.NoError(t, err)
	after, err := withKeywords.Tokenize(input)
	require.NoError(t, err)
	require.Len(t, after, len(before))

	keywords := map[int]bool{1: true, 2: true, 3: true, 9: true}
	for i := range before {
		assert.Equal(t, IdentifierKind, before[i].Kind)
		if keywords[i] {
			assert.Equal(t, KeywordKind, after[i].Kind, "token %d %q", i, after[i].Text)
		} else {
			assert.True(t, before[i].Equal(after[i]), "token %d: %s vs %s", i, before[i], after[i])
		}
	}
}

func TestKeywordCaseSensitive(t *testing.T) {
	t.Parallel()

	tokens, err := New(WithKeywords(false, "AND")).Tokenize("AND and")
	require.NoError(t, err)
	assertTokens(t, []Token{kw("AND"), ident("and")}, tokens)
}

func TestLexer_Shared(t *testing.T) {
	t.Parallel()

	lx := New(WithKeywords(true, "in"))
	inputs := []string{"a in [1,2]", "b + 2.5m", "'x' ?? y", "c IN d"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, input := range inputs {
			wg.Add(1)
			go func(input string) {
				defer wg.Done()
				expected, err := lx.Tokenize(input)
				assert.NoError(t, err)
				got, err := lx.Tokenize(input)
				assert.NoError(t, err)
				assertTokens(t, expected, got)
			}(input)
		}
	}
	wg.Wait()
}

func TestBuilder_Order(t *testing.T) {
	t.Parallel()

	first := NewKeywordTokenizer(false, "first")
	second := NewKeywordTokenizer(false, "second")
	last := NewKeywordTokenizer(false, "last")

	lx := NewBuilder().Prepend(first).Prepend(second).Append(last).Build()
	ts := lx.Tokenizers()
	require.Len(t, ts, 7)
	assert.Same(t, second, ts[0])
	assert.Same(t, first, ts[1])
	assert.Same(t, last, ts[6])

	// mutating the copy does not touch the lexer
	ts[0] = nil
	assert.NotNil(t, lx.Tokenizers()[0])

	bare := NewBuilder().WithoutDefaults().Append(NumberTokenizer{}, nil).Build()
	require.Len(t, bare.Tokenizers(), 1)
	_, err := bare.Tokenize("1 a")
	assert.ErrorIs(t, err, lexerr.ErrUnrecognizedToken)
}

type greedyTokenizer struct{ result Result }

func (greedyTokenizer) Name() string { return "greedy" }

func (g greedyTokenizer) Tokenize(r Reader) (Result, error) {
	r.Next()
	return g.result, nil
}

type failingTokenizer struct{}

func (failingTokenizer) Name() string { return "failing" }

func (failingTokenizer) Tokenize(r Reader) (Result, error) {
	r.Next()
	return Result{}, errors.New("boom")
}

// sharedErrorTokenizer fails with an exported sentinel value.
type sharedErrorTokenizer struct{}

func (sharedErrorTokenizer) Name() string { return "custom" }

func (sharedErrorTokenizer) Tokenize(r Reader) (Result, error) {
	r.Next()
	return Result{}, lexerr.ErrUnrecognizedToken
}

func TestScan_SentinelFromTokenizerIsNotModified(t *testing.T) {
	lx := New(WithTokenizers(sharedErrorTokenizer{}))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = lx.Tokenize("x")
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.ErrorIs(t, err, lexerr.ErrUnrecognizedToken)

		var lexErr *lexerr.LexError
		require.True(t, errors.As(err, &lexErr))
		assert.NotSame(t, lexerr.ErrUnrecognizedToken, lexErr)
		assert.Equal(t, "Scan", lexErr.Operation)
		assert.Equal(t, "custom", lexErr.Component)
	}

	assert.Empty(t, lexerr.ErrUnrecognizedToken.Operation)
	assert.Empty(t, lexerr.ErrUnrecognizedToken.Component)
}

func TestScan_ContractViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		t        Tokenizer
		expected *lexerr.LexError
	}{
		{"reject keeps characters", greedyTokenizer{Reject(0)}, lexerr.ErrInvalidPushback},
		{"accept returns too much", greedyTokenizer{Accept(ident("a"), 2)}, lexerr.ErrInvalidPushback},
		{"accept consumes nothing", greedyTokenizer{Accept(ident("a"), 1)}, lexerr.ErrInvalidPushback},
		{"plain error", failingTokenizer{}, lexerr.ErrTokenizerFailed},
	}

	for _, tt := range tests {
		_, err := New(WithTokenizers(tt.t)).Tokenize("abc")
		assert.ErrorIs(t, err, tt.expected, tt.name)

		var lexErr *lexerr.LexError
		require.True(t, errors.As(err, &lexErr), tt.name)
		assert.Equal(t, tt.t.Name(), lexErr.Component, tt.name)
	}
}

type brokenReader struct {
	r   *strings.Reader
	err error
}

func (b *brokenReader) ReadRune() (rune, int, error) {
	if b.r.Len() == 0 {
		return 0, 0, b.err
	}
	return b.r.ReadRune()
}

func TestScan_SourceError(t *testing.T) {
	t.Parallel()

	disk := errors.New("disk on fire")
	sc := New().NewScanner(&brokenReader{r: strings.NewReader("abc"), err: disk})

	_, err := sc.Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, lexerr.ErrSourceRead)
	assert.ErrorIs(t, err, disk)
}

func TestToken_StringAndJSON(t *testing.T) {
	t.Parallel()

	tokens, err := New(WithKeywords(true, "in")).Tokenize("x IN 5.5m ?? null")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, `Identifier("x")`, tokens[0].String())
	assert.Equal(t, `Keyword("IN")`, tokens[1].String())
	assert.Equal(t, "Constant(Decimal=5.5)", tokens[2].String())
	assert.Equal(t, "Symbol(Coalesce)", tokens[3].String())
	assert.Equal(t, "Constant(Null)", tokens[4].String())

	data, err := tokens[2].MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Constant","text":"5.5m","type":"Decimal","value":"5.5","line":1,"column":6,"offset":5}`, string(data))

	data, err = tokens[1].MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Keyword","text":"IN","canon":"in","line":1,"column":3,"offset":2}`, string(data))
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, s := range Symbols() {
		spelling := s.Spelling()
		require.NotEmpty(t, spelling, s.String())
		assert.False(t, seen[spelling], "duplicate spelling %q", spelling)
		seen[spelling] = true

		back, ok := LookupSymbol(spelling)
		assert.True(t, ok)
		assert.Equal(t, s, back)
	}

	_, ok := LookupSymbol("=>")
	assert.False(t, ok)
	assert.Equal(t, "Symbol(99)", Symbol(99).String())
	assert.Equal(t, "", Symbol(-1).Spelling())
}
