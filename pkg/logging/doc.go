// Package logging provides a process-wide structured logger for exprlex.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. The lexer, the
// batch runner and the interactive front ends all obtain their logger through
// this package so that level and destination are controlled from main.
//
// # Initialisation
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, Format: "json"}); err != nil {
//	    log.Fatal(err)
//	}
//
// InitDefault writes WARN-level text logs to stderr. Stdout is left alone
// because the CLI prints tokens there.
//
// # Context helpers
//
//	log := logging.WithInput("query.expr")     // adds input field
//	log := logging.WithTokenizer("number")     // adds tokenizer field
//	log := logging.WithComponent("batch")      // adds component field
package logging
