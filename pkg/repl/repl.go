// Package repl is a line-oriented token dumper: every line read is scanned
// with a fresh Scanner and its tokens are printed one per line.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/peterh/liner"

	"exprlex/pkg/lexer"
	"exprlex/pkg/logging"
	"exprlex/pkg/ui"
)

const (
	prompt      = "lex> "
	historyFile = ".exprlex_history"
)

const helpText = `Type an expression to see its tokens.
  :keywords           list keywords
  :keywords w1 w2 ... replace keywords
  :help               show this text
  :quit               leave`

// Config controls a Session.
type Config struct {
	Keywords        []string
	CaseInsensitive bool
	// Styled colors token text with the highlighter palette.
	Styled bool
	// HistoryPath defaults to ~/.exprlex_history; "-" disables history.
	HistoryPath string
}

// Session holds the lexer in use. It is not safe for concurrent use.
type Session struct {
	cfg   Config
	lexer *lexer.Lexer
	out   io.Writer
}

func NewSession(cfg Config, out io.Writer) *Session {
	s := &Session{cfg: cfg, out: out}
	s.rebuild()
	return s
}

func (s *Session) rebuild() {
	var opts []lexer.Option
	if len(s.cfg.Keywords) > 0 {
		opts = append(opts, lexer.WithKeywords(s.cfg.CaseInsensitive, s.cfg.Keywords...))
	}
	s.lexer = lexer.New(opts...)
}

// Eval handles one input line and reports whether the session goes on.
func (s *Session) Eval(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.command(strings.Fields(trimmed))
	}

	tokens, err := s.lexer.Tokenize(line)
	if werr := ui.WriteTokens(s.out, tokens, s.cfg.Styled); werr != nil {
		logging.WithError(werr).Warn("failed to write tokens")
	}
	if err != nil {
		fmt.Fprintln(s.out, ui.FormatError(err, s.cfg.Styled))
	}
	return true
}

func (s *Session) command(fields []string) bool {
	switch strings.ToLower(fields[0]) {
	case ":quit", ":q", ":exit":
		return false
	case ":help":
		fmt.Fprintln(s.out, helpText)
	case ":keywords":
		if len(fields) > 1 {
			s.cfg.Keywords = append([]string(nil), fields[1:]...)
			s.rebuild()
			logging.WithComponent("repl").Debug("keywords replaced", "keywords", strings.Join(s.cfg.Keywords, ","))
		}
		words := s.keywords()
		if len(words) == 0 {
			fmt.Fprintln(s.out, "no keywords")
		} else {
			fmt.Fprintf(s.out, "keywords: %s\n", strings.Join(words, " "))
		}
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for commands.\n", fields[0])
	}
	return true
}

// keywords returns the words the current lexer reserves, sorted.
func (s *Session) keywords() []string {
	for _, t := range s.lexer.Tokenizers() {
		if lt, ok := t.(*lexer.LiteralTokenizer); ok && lt.Name() == "keyword" {
			words := lt.Candidates()
			sort.Strings(words)
			return words
		}
	}
	return nil
}

func (s *Session) historyPath() string {
	switch s.cfg.HistoryPath {
	case "-":
		return ""
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, historyFile)
	default:
		return s.cfg.HistoryPath
	}
}

// watchSignals calls onSignal on SIGTERM or SIGHUP until stop is called.
// finished is closed once the watching goroutine has returned.
func watchSignals(onSignal func()) (stop func(), finished <-chan struct{}) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		defer close(exited)
		select {
		case <-sigc:
			onSignal()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigc)
			close(done)
		})
	}, exited
}

// Run reads lines from the terminal until :quit or end of input.
func (s *Session) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := s.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				logging.WithError(err).Warn("failed to save history", "path", histPath)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	stop, _ := watchSignals(func() {
		ln.Close()
		os.Exit(130)
	})
	defer stop()

	fmt.Fprintln(s.out, "exprlex REPL. Type :help for commands.")
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !s.Eval(line) {
			return nil
		}
	}
}
