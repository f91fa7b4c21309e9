package lexer

import (
	"strings"
	"unicode"
)

// LiteralTokenizer is a longest-match recognizer over a fixed set of
// candidate strings. It extends its prefix while the prefix plus the next
// character still begins some candidate, then accepts the prefix if it is a
// candidate and rejects otherwise, handing back everything it read.
//
// Longest match relies on every prefix of a multi-character candidate that
// may legitimately stand alone being a candidate too, as is the case for
// the symbol set (=, ==; ?, ??; ...).
type LiteralTokenizer struct {
	name            string
	caseInsensitive bool

	prefixes map[string]struct{}
	exact    map[string]string // folded candidate -> configured spelling

	// stop reports characters that may not directly follow a match.
	stop func(rune) bool
	// build turns a match into a token.
	build func(text, canon string) Token
}

// NewLiteralTokenizer builds a literal tokenizer. Empty candidates are ignored.
func NewLiteralTokenizer(name string, caseInsensitive bool, candidates []string, build func(text, canon string) Token) *LiteralTokenizer {
	t := &LiteralTokenizer{
		name:            name,
		caseInsensitive: caseInsensitive,
		prefixes:        make(map[string]struct{}),
		exact:           make(map[string]string, len(candidates)),
		build:           build,
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		folded := t.foldString(c)
		t.exact[folded] = c
		runes := []rune(folded)
		for i := 1; i <= len(runes); i++ {
			t.prefixes[string(runes[:i])] = struct{}{}
		}
	}
	return t
}

func (t *LiteralTokenizer) Name() string { return t.name }

// Candidates returns the configured spellings in no particular order.
func (t *LiteralTokenizer) Candidates() []string {
	out := make([]string, 0, len(t.exact))
	for _, c := range t.exact {
		out = append(out, c)
	}
	return out
}

func (t *LiteralTokenizer) fold(r rune) rune {
	if t.caseInsensitive {
		return unicode.ToLower(r)
	}
	return r
}

func (t *LiteralTokenizer) foldString(s string) string {
	if t.caseInsensitive {
		return strings.Map(unicode.ToLower, s)
	}
	return s
}

func (t *LiteralTokenizer) Tokenize(r Reader) (Result, error) {
	var (
		folded []rune
		raw    []rune
	)

	for {
		c := r.Next()
		if c == EOF {
			if len(raw) == 0 {
				return End(), nil
			}
			if canon, ok := t.exact[string(folded)]; ok {
				return Accept(t.build(string(raw), canon), 0), nil
			}
			return Reject(len(raw)), nil
		}

		extended := append(folded, t.fold(c))
		if _, ok := t.prefixes[string(extended)]; ok {
			folded = extended
			raw = append(raw, c)
			continue
		}

		canon, ok := t.exact[string(folded)]
		if !ok || len(raw) == 0 || (t.stop != nil && t.stop(c)) {
			return Reject(len(raw) + 1), nil
		}
		if unicode.IsSpace(c) {
			// the separator is dropped rather than handed back
			return Accept(t.build(string(raw), canon), 0), nil
		}
		return Accept(t.build(string(raw), canon), 1), nil
	}
}

// NewSymbolTokenizer recognizes the operator and punctuation symbols.
func NewSymbolTokenizer() *LiteralTokenizer {
	spellings := make([]string, 0, symbolCount)
	for _, s := range Symbols() {
		spellings = append(spellings, s.Spelling())
	}
	return NewLiteralTokenizer("symbol", false, spellings, func(text, _ string) Token {
		s, _ := LookupSymbol(text)
		return NewSymbol(s)
	})
}

// NewKeywordTokenizer recognizes the given reserved words. A match directly
// followed by a letter, digit or underscore is rejected, so "between" is a
// keyword but "betweenish" stays an identifier. The token's Text keeps the
// source spelling and Canon the configured one.
func NewKeywordTokenizer(caseInsensitive bool, words ...string) *LiteralTokenizer {
	t := NewLiteralTokenizer("keyword", caseInsensitive, words, NewKeyword)
	t.stop = isIdentPart
	return t
}
