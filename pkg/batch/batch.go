// Package batch lexes many inputs concurrently over one shared Lexer.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	lexerr "exprlex/pkg/error"
	"exprlex/pkg/lexer"
	"exprlex/pkg/logging"
)

// Input is a named source of text. Open is called from the worker that
// scans the input, so files are not held open while queued.
type Input struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Result holds the tokens of one input.
type Result struct {
	Name   string
	Tokens []lexer.Token
}

// StringInput returns an Input reading s.
func StringInput(name, s string) Input {
	return Input{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(s)), nil
		},
	}
}

// FileInput returns an Input reading the file at path.
func FileInput(path string) Input {
	return Input{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// Run scans every input with its own Scanner, at most limit at a time
// (limit <= 0 means no bound). Results are in input order. The first failure
// cancels the remaining work and is returned annotated with its input name.
func Run(ctx context.Context, lx *lexer.Lexer, inputs []Input, limit int) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, in := range inputs {
		g.Go(func() error {
			tokens, err := scan(ctx, lx, in)
			if err != nil {
				logging.WithInput(in.Name).Debug("batch input failed", "error", err)
				return fmt.Errorf("lexing %s: %w", in.Name, err)
			}
			results[i] = Result{Name: in.Name, Tokens: tokens}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scan(ctx context.Context, lx *lexer.Lexer, in Input) ([]lexer.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := in.Open()
	if err != nil {
		return nil, lexerr.Wrap(err, lexerr.CodeSourceRead, "Open", "batch")
	}
	defer src.Close()

	sc := lx.NewScanner(bufio.NewReader(src))
	sc.SetName(in.Name)

	var tokens []lexer.Token
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := sc.Scan()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
