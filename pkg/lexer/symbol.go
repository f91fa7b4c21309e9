package lexer

import "fmt"

// Symbol enumerates the operator and punctuation tokens.
type Symbol int

const (
	// arithmetic
	Plus Symbol = iota
	Minus
	Multiply
	Divide
	Modulo

	// comparison
	Equal
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual

	// logical and bitwise
	Not
	AndAlso
	OrElse
	And
	Or
	ExclusiveOr
	Complement

	Assign

	// grouping
	OpeningParenthesis
	ClosingParenthesis
	OpeningBracket
	ClosingBracket
	OpeningBrace
	ClosingBrace

	// separators
	Comma
	Dot
	Colon

	// conditional
	Question
	Coalesce

	symbolCount
)

type symbolInfo struct {
	name     string
	spelling string
}

var symbolTable = [symbolCount]symbolInfo{
	Plus:               {"Plus", "+"},
	Minus:              {"Minus", "-"},
	Multiply:           {"Multiply", "*"},
	Divide:             {"Divide", "/"},
	Modulo:             {"Modulo", "%"},
	Equal:              {"Equal", "=="},
	NotEqual:           {"NotEqual", "!="},
	LessThan:           {"LessThan", "<"},
	LessThanOrEqual:    {"LessThanOrEqual", "<="},
	GreaterThan:        {"GreaterThan", ">"},
	GreaterThanOrEqual: {"GreaterThanOrEqual", ">="},
	Not:                {"Not", "!"},
	AndAlso:            {"AndAlso", "&&"},
	OrElse:             {"OrElse", "||"},
	And:                {"And", "&"},
	Or:                 {"Or", "|"},
	ExclusiveOr:        {"ExclusiveOr", "^"},
	Complement:         {"Complement", "~"},
	Assign:             {"Assign", "="},
	OpeningParenthesis: {"OpeningParenthesis", "("},
	ClosingParenthesis: {"ClosingParenthesis", ")"},
	OpeningBracket:     {"OpeningBracket", "["},
	ClosingBracket:     {"ClosingBracket", "]"},
	OpeningBrace:       {"OpeningBrace", "{"},
	ClosingBrace:       {"ClosingBrace", "}"},
	Comma:              {"Comma", ","},
	Dot:                {"Dot", "."},
	Colon:              {"Colon", ":"},
	Question:           {"Question", "?"},
	Coalesce:           {"Coalesce", "??"},
}

var symbolsBySpelling = func() map[string]Symbol {
	m := make(map[string]Symbol, symbolCount)
	for i, info := range symbolTable {
		m[info.spelling] = Symbol(i)
	}
	return m
}()

func (s Symbol) valid() bool {
	return s >= 0 && s < symbolCount
}

// String returns the symbol's name, e.g. "OrElse".
func (s Symbol) String() string {
	if !s.valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolTable[s].name
}

// Spelling returns the canonical source text, e.g. "||".
func (s Symbol) Spelling() string {
	if !s.valid() {
		return ""
	}
	return symbolTable[s].spelling
}

// LookupSymbol returns the symbol spelled exactly as text.
func LookupSymbol(text string) (Symbol, bool) {
	s, ok := symbolsBySpelling[text]
	return s, ok
}

// Symbols returns every symbol in declaration order.
func Symbols() []Symbol {
	out := make([]Symbol, symbolCount)
	for i := range out {
		out[i] = Symbol(i)
	}
	return out
}
