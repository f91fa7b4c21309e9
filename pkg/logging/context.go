package logging

import "log/slog"

// WithInput creates a logger tagged with the name of the input being scanned.
//
// Example:
//
//	log := logging.WithInput("filters.expr")
//	log.Debug("scan finished", "tokens", n)
func WithInput(name string) *slog.Logger {
	return GetLogger().With("input", name)
}

// WithTokenizer creates a logger tagged with a tokenizer name.
func WithTokenizer(name string) *slog.Logger {
	return GetLogger().With("tokenizer", name)
}

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("lexer")
//	log.Debug("registry built", "tokenizers", 5)
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger with error context.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
