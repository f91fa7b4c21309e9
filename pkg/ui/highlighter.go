package ui

import (
	"io"
	"strings"
	"unicode"

	"exprlex/pkg/lexer"
	"exprlex/pkg/types"
)

// Class is the highlighting category of a piece of source text.
type Class int

const (
	PlainClass Class = iota
	KeywordClass
	IdentifierClass
	NumberClass
	StringClass
	LiteralClass
	SymbolClass
	ErrorClass
)

func (c Class) String() string {
	switch c {
	case KeywordClass:
		return "keyword"
	case IdentifierClass:
		return "identifier"
	case NumberClass:
		return "number"
	case StringClass:
		return "string"
	case LiteralClass:
		return "literal"
	case SymbolClass:
		return "symbol"
	case ErrorClass:
		return "error"
	default:
		return "plain"
	}
}

// ClassOf returns the highlighting class of a token.
func ClassOf(tok lexer.Token) Class {
	switch tok.Kind {
	case lexer.KeywordKind:
		return KeywordClass
	case lexer.IdentifierKind:
		return IdentifierClass
	case lexer.SymbolKind:
		return SymbolClass
	case lexer.ConstantKind:
		if tok.Constant == nil {
			return PlainClass
		}
		t := tok.Constant.Type()
		switch {
		case t.IsNumeric():
			return NumberClass
		case t == types.StringType:
			return StringClass
		default:
			return LiteralClass
		}
	}
	return PlainClass
}

// Segment is a run of source text with one class.
type Segment struct {
	Text  string
	Class Class
}

// Highlighter colors expressions by running them through a Lexer, so what
// is highlighted is exactly what the lexer recognizes.
type Highlighter struct {
	lexer *lexer.Lexer
}

func NewHighlighter(lx *lexer.Lexer) *Highlighter {
	return &Highlighter{lexer: lx}
}

// Segments splits src into classified runs whose concatenation is src. If
// scanning fails, the text from the end of the last good token is returned
// as ErrorClass (after any leading whitespace) together with the error.
func (h *Highlighter) Segments(src string) ([]Segment, error) {
	runes := []rune(src)
	sc := h.lexer.ScanString(src)

	var segs []Segment
	pos := 0
	for {
		tok, err := sc.Scan()
		if err == io.EOF {
			if pos < len(runes) {
				segs = append(segs, Segment{Text: string(runes[pos:]), Class: PlainClass})
			}
			return segs, nil
		}
		if err != nil {
			rest := runes[pos:]
			i := 0
			for i < len(rest) && unicode.IsSpace(rest[i]) {
				i++
			}
			if i > 0 {
				segs = append(segs, Segment{Text: string(rest[:i]), Class: PlainClass})
			}
			if i < len(rest) {
				segs = append(segs, Segment{Text: string(rest[i:]), Class: ErrorClass})
			}
			return segs, err
		}

		if tok.Pos.Offset > pos {
			segs = append(segs, Segment{Text: string(runes[pos:tok.Pos.Offset]), Class: PlainClass})
		}
		segs = append(segs, Segment{Text: string(runes[tok.Pos.Offset:tok.End.Offset]), Class: ClassOf(tok)})
		pos = tok.End.Offset
	}
}

// Highlight renders src with one style per class. Errors are shown through
// the error style only.
func (h *Highlighter) Highlight(src string) string {
	segs, _ := h.Segments(src)

	var b strings.Builder
	for _, s := range segs {
		if s.Class == PlainClass {
			b.WriteString(s.Text)
			continue
		}
		// lipgloss pads multi-line blocks to a common width, so style line by line
		for i, line := range strings.Split(s.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(classStyles[s.Class].Render(line))
			}
		}
	}
	return b.String()
}
