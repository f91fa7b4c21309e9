package lexer

import (
	"fmt"
	"io"
	"unicode"

	lexerr "exprlex/pkg/error"
	"exprlex/pkg/logging"
)

// Scanner produces the tokens of one input. It is not safe for concurrent
// use and cannot be restarted: after the first error every call to Scan
// returns that error.
type Scanner struct {
	cur        *cursor
	tokenizers []Tokenizer
	name       string

	err  error
	done bool
}

func newScanner(tokenizers []Tokenizer, src io.RuneReader) *Scanner {
	return &Scanner{cur: newCursor(src), tokenizers: tokenizers}
}

// SetName labels the input in logs.
func (s *Scanner) SetName(name string) {
	s.name = name
}

// Err returns the error that stopped the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Scan returns the next token, or io.EOF once the input is exhausted.
func (s *Scanner) Scan() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if s.done {
		return Token{}, io.EOF
	}

	more := s.cur.skipSpace()
	if err := s.sourceErr(); err != nil {
		return Token{}, err
	}
	if !more {
		s.done = true
		return Token{}, io.EOF
	}

	start := s.cur.peekPos()
	for _, t := range s.tokenizers {
		res, err := t.Tokenize(s.cur)
		if serr := s.sourceErr(); serr != nil {
			return Token{}, serr
		}
		if err != nil {
			return Token{}, s.fail(lexerr.Wrap(err, lexerr.CodeTokenizerFailed, "Scan", t.Name()))
		}

		switch res.Outcome() {
		case Accepted:
			if !s.cur.unread(res.Pushback()) {
				return Token{}, s.fail(s.badPushback(t, res))
			}
			kept := s.cur.commit()
			if len(kept) == 0 {
				return Token{}, s.fail(s.badPushback(t, res))
			}
			tok := res.Token()
			tok.Pos = start
			tok.End = endOf(kept)
			return tok, nil

		case Rejected, EndOfInput:
			if res.Outcome() == Rejected && res.Pushback() != len(s.cur.history) {
				return Token{}, s.fail(s.badPushback(t, res))
			}
			s.cur.reset()

		default:
			return Token{}, s.fail(s.badPushback(t, res))
		}
	}

	r := s.cur.Next()
	err := failAt(s.cur, lexerr.ErrUnrecognizedToken, "Scan").WithDetail("%q", r)
	err.Component = "scanner"
	return Token{}, s.fail(err)
}

// endOf returns the position just past the last non-space character kept.
func endOf(kept []char) Position {
	last := len(kept) - 1
	for last > 0 && unicode.IsSpace(kept[last].r) {
		last--
	}
	ch := kept[last]
	end := ch.pos
	end.Offset++
	if ch.r == '\n' {
		end.Line++
		end.Column = 1
	} else {
		end.Column++
	}
	return end
}

func (s *Scanner) badPushback(t Tokenizer, res Result) *lexerr.LexError {
	p := s.cur.Pos()
	err := lexerr.From(lexerr.ErrInvalidPushback).
		At(p.Offset, p.Line, p.Column).
		WithDetail("%s returned %s after reading %d characters", t.Name(), res, len(s.cur.history))
	err.Operation = "Scan"
	err.Component = t.Name()
	return err
}

func (s *Scanner) sourceErr() error {
	if s.cur.err == nil {
		return nil
	}
	if s.err == nil {
		p := s.cur.Pos()
		s.fail(lexerr.Wrap(s.cur.err, lexerr.CodeSourceRead, "Scan", "scanner").At(p.Offset, p.Line, p.Column))
	}
	return s.err
}

func (s *Scanner) fail(err *lexerr.LexError) error {
	s.err = err
	log := logging.WithTokenizer(err.Component)
	if s.name != "" {
		log = log.With("input", s.name)
	}
	log.Debug("scan failed", "code", err.Code, "line", err.Line, "column", err.Column)
	return err
}

// All scans until the end of input and returns every token.
func (s *Scanner) All() ([]Token, error) {
	var out []Token
	for {
		tok, err := s.Scan()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}

func (s *Scanner) String() string {
	if s.name == "" {
		return fmt.Sprintf("Scanner(%d tokenizers)", len(s.tokenizers))
	}
	return fmt.Sprintf("Scanner(%s, %d tokenizers)", s.name, len(s.tokenizers))
}
