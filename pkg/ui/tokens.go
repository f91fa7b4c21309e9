package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	lexerr "exprlex/pkg/error"
	"exprlex/pkg/lexer"
	"exprlex/pkg/ui/base"
)

const (
	posWidth  = 7
	kindWidth = 10
	textWidth = 24
)

// WriteTokens prints one token per line: position, kind, source text and
// the classified token. With styled set the source text is colored by class.
func WriteTokens(w io.Writer, tokens []lexer.Token, styled bool) error {
	for _, tok := range tokens {
		if _, err := io.WriteString(w, FormatToken(tok, styled)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatToken renders a single WriteTokens line without the newline.
func FormatToken(tok lexer.Token, styled bool) string {
	text := base.TruncateString(tok.Text, textWidth)
	pad := strings.Repeat(" ", textWidth-utf8.RuneCountInString(text))
	if styled {
		text = classStyles[ClassOf(tok)].Render(text)
	}
	return fmt.Sprintf("%s  %s  %s%s  %s",
		base.RightAlign(tok.Pos.String(), posWidth),
		base.PadString(tok.Kind.String(), kindWidth),
		text, pad,
		tok)
}

// FormatError renders a scan error for terminal output. The hint of a
// lexical error goes on its own line.
func FormatError(err error, styled bool) string {
	label := "error:"
	if styled {
		label = errorTextStyle.Render(label)
	}

	var lexErr *lexerr.LexError
	if !errors.As(err, &lexErr) {
		return fmt.Sprintf("%s %v", label, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %v", label, err)
	if lexErr.Hint != "" {
		hint := "hint: " + lexErr.Hint
		if styled {
			hint = mutedStyle.Render(hint)
		}
		fmt.Fprintf(&b, "\n  %s", hint)
	}
	return b.String()
}
