package lexer

import (
	"io"
	"strings"

	"exprlex/pkg/logging"
)

// Lexer is an ordered list of tokenizers. It is immutable once built and may
// be shared by any number of Scanners, including concurrently running ones.
type Lexer struct {
	tokenizers []Tokenizer
}

// DefaultTokenizers returns a fresh copy of the standard tokenizer order:
// symbols, numbers, strings, identifiers.
func DefaultTokenizers() []Tokenizer {
	return []Tokenizer{
		NewSymbolTokenizer(),
		NumberTokenizer{},
		StringTokenizer{},
		IdentifierTokenizer{},
	}
}

// Builder assembles the tokenizer order of a Lexer. Tokenizers placed in
// front of the defaults take precedence over them.
type Builder struct {
	front    []Tokenizer
	back     []Tokenizer
	defaults bool
}

// NewBuilder returns a Builder that includes the default tokenizers.
func NewBuilder() *Builder {
	return &Builder{defaults: true}
}

// Prepend inserts ts, in the given order, ahead of everything added so far.
func (b *Builder) Prepend(ts ...Tokenizer) *Builder {
	b.front = append(append([]Tokenizer{}, nonNil(ts)...), b.front...)
	return b
}

// Append adds ts after the defaults and anything appended before.
func (b *Builder) Append(ts ...Tokenizer) *Builder {
	b.back = append(b.back, nonNil(ts)...)
	return b
}

// WithoutDefaults drops the default tokenizers.
func (b *Builder) WithoutDefaults() *Builder {
	b.defaults = false
	return b
}

// Build returns the Lexer. The Builder may be reused afterwards without
// affecting it.
func (b *Builder) Build() *Lexer {
	ts := make([]Tokenizer, 0, len(b.front)+len(b.back)+4)
	ts = append(ts, b.front...)
	if b.defaults {
		ts = append(ts, DefaultTokenizers()...)
	}
	ts = append(ts, b.back...)

	l := &Lexer{tokenizers: ts}
	logging.WithComponent("lexer").Debug("lexer built", "tokenizers", strings.Join(l.names(), ","))
	return l
}

func nonNil(ts []Tokenizer) []Tokenizer {
	out := make([]Tokenizer, 0, len(ts))
	for _, t := range ts {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Option configures New.
type Option func(*Builder)

// WithKeywords prepends a keyword tokenizer for words.
func WithKeywords(caseInsensitive bool, words ...string) Option {
	return func(b *Builder) {
		b.Prepend(NewKeywordTokenizer(caseInsensitive, words...))
	}
}

// WithTokenizers prepends ts.
func WithTokenizers(ts ...Tokenizer) Option {
	return func(b *Builder) {
		b.Prepend(ts...)
	}
}

// New returns a Lexer with the default tokenizers and the given options
// applied in order.
func New(opts ...Option) *Lexer {
	b := NewBuilder()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Tokenizers returns a copy of the tokenizer order.
func (l *Lexer) Tokenizers() []Tokenizer {
	return append([]Tokenizer(nil), l.tokenizers...)
}

func (l *Lexer) names() []string {
	names := make([]string, len(l.tokenizers))
	for i, t := range l.tokenizers {
		names[i] = t.Name()
	}
	return names
}

// NewScanner returns a Scanner over src.
func (l *Lexer) NewScanner(src io.RuneReader) *Scanner {
	return newScanner(l.tokenizers, src)
}

// ScanString returns a Scanner over s.
func (l *Lexer) ScanString(s string) *Scanner {
	return l.NewScanner(strings.NewReader(s))
}

// Tokenize scans s to the end. On error the tokens read before the failure
// are returned along with it.
func (l *Lexer) Tokenize(s string) ([]Token, error) {
	return l.ScanString(s).All()
}
