package error

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies lexical errors by the tokenizer family that raised them.
// Every category is fatal to the scan in progress; the category only tells the
// caller which part of the input was malformed.
type ErrorCategory int

const (
	// ErrCategoryNumeric represents malformed numeric literals.
	// Examples: 1.2.3, 1.5L, a trailing decimal point.
	ErrCategoryNumeric ErrorCategory = iota

	// ErrCategoryString represents malformed string literals.
	// Examples: a raw newline between the quotes, a missing closing quote.
	ErrCategoryString

	// ErrCategoryDispatch represents input that no registered tokenizer accepts.
	ErrCategoryDispatch

	// ErrCategoryInternal represents a tokenizer breaking the scanner's contract,
	// such as returning more characters than it read.
	ErrCategoryInternal

	// ErrCategoryIO represents a failure of the underlying character source.
	ErrCategoryIO
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNumeric:
		return "numeric"
	case ErrCategoryString:
		return "string"
	case ErrCategoryDispatch:
		return "dispatch"
	case ErrCategoryInternal:
		return "internal"
	case ErrCategoryIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error codes.
const (
	CodeMultipleDecimalPoints = "MULTIPLE_DECIMAL_POINTS"
	CodeLongWithDecimalPoint  = "LONG_WITH_DECIMAL_POINT"
	CodeDanglingDecimalPoint  = "DANGLING_DECIMAL_POINT"
	CodeNumberOutOfRange      = "NUMBER_OUT_OF_RANGE"
	CodeNewlineInString       = "NEWLINE_IN_STRING"
	CodeUnterminatedString    = "UNTERMINATED_STRING"
	CodeUnrecognizedToken     = "UNRECOGNIZED_TOKEN"
	CodeInvalidPushback       = "INVALID_PUSHBACK"
	CodeSourceRead            = "SOURCE_READ"
	CodeTokenizerFailed       = "TOKENIZER_FAILED"
)

// Sentinels for errors.Is. A LexError matches a sentinel when their codes are equal.
var (
	ErrMultipleDecimalPoints = sentinel(ErrCategoryNumeric, CodeMultipleDecimalPoints, "multiple decimal points in numeric literal")
	ErrLongWithDecimalPoint  = sentinel(ErrCategoryNumeric, CodeLongWithDecimalPoint, "L suffix on a literal with a decimal point")
	ErrDanglingDecimalPoint  = sentinel(ErrCategoryNumeric, CodeDanglingDecimalPoint, "decimal point not followed by a digit")
	ErrNumberOutOfRange      = sentinel(ErrCategoryNumeric, CodeNumberOutOfRange, "numeric literal out of range")
	ErrNewlineInString       = sentinel(ErrCategoryString, CodeNewlineInString, "newline in string literal")
	ErrUnterminatedString    = sentinel(ErrCategoryString, CodeUnterminatedString, "unterminated string literal")
	ErrUnrecognizedToken     = sentinel(ErrCategoryDispatch, CodeUnrecognizedToken, "unrecognized token")
	ErrInvalidPushback       = sentinel(ErrCategoryInternal, CodeInvalidPushback, "invalid pushback")
	ErrSourceRead            = sentinel(ErrCategoryIO, CodeSourceRead, "failed to read input")
	ErrTokenizerFailed       = sentinel(ErrCategoryInternal, CodeTokenizerFailed, "tokenizer failed")
)

var categories = map[string]ErrorCategory{}

func init() {
	for _, s := range []*LexError{
		ErrMultipleDecimalPoints, ErrLongWithDecimalPoint, ErrDanglingDecimalPoint,
		ErrNumberOutOfRange, ErrNewlineInString, ErrUnterminatedString,
		ErrUnrecognizedToken, ErrInvalidPushback, ErrSourceRead, ErrTokenizerFailed,
	} {
		categories[s.Code] = s.Category
	}
}

func sentinel(category ErrorCategory, code, message string) *LexError {
	return &LexError{Code: code, Category: category, Message: message}
}

// LexError represents a structured lexical error with rich context information.
type LexError struct {
	// Code is a unique identifier for this error type (e.g., "UNTERMINATED_STRING").
	Code string

	// Category classifies the error by the literal family that failed.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	// Example: the offending literal text "1.2." where Message is the generic description.
	Detail string

	// Hint suggests how the user might fix the input.
	Hint string

	// Offset, Line and Column locate the character at which the error was detected.
	// Offset counts runes from the start of input; Line and Column are 1-based.
	// A zero Line means the position is unknown.
	Offset int
	Line   int
	Column int

	// Operation identifies what was being performed when the error occurred.
	// Examples: "Scan", "ScanNumber", "ScanString".
	Operation string

	// Component identifies the tokenizer or subsystem where the error originated.
	// Examples: "number", "scanner", "batch".
	Component string

	// Cause is the underlying error that triggered this error.
	Cause error

	// Stack contains the call stack where this error was created.
	// Used for debugging and is automatically captured in New() and Wrap().
	Stack []uintptr
}

// New creates a new LexError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *LexError {
	return &LexError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// From creates a new LexError carrying the code, category and message of a sentinel.
func From(s *LexError) *LexError {
	err := New(s.Category, s.Code, s.Message)
	err.Hint = s.Hint
	return err
}

// Wrap wraps an existing error with lexer-specific context information.
// If the error is already a LexError, it returns a copy enriched with
// operation and component context (only where not already set); err itself
// is never modified, since it may be a shared sentinel. Otherwise the
// category is taken from the sentinel registered for code.
func Wrap(err error, code, operation, component string) *LexError {
	if err == nil {
		return nil
	}

	if lexErr, ok := err.(*LexError); ok {
		c := *lexErr
		if c.Operation == "" {
			c.Operation = operation
		}
		if c.Component == "" {
			c.Component = component
		}
		return &c
	}

	category, ok := categories[code]
	if !ok {
		category = ErrCategoryInternal
	}

	return &LexError{
		Code:      code,
		Category:  category,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WithDetail sets Detail and returns the receiver for chaining.
func (e *LexError) WithDetail(format string, args ...any) *LexError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithHint sets Hint and returns the receiver for chaining.
func (e *LexError) WithHint(hint string) *LexError {
	e.Hint = hint
	return e
}

// At records where the error was detected and returns the receiver for chaining.
func (e *LexError) At(offset, line, column int) *LexError {
	e.Offset, e.Line, e.Column = offset, line, column
	return e
}

// captureStack captures the current call stack for debugging purposes.
// It skips the first 3 frames to exclude captureStack, New/Wrap, and the
// immediate caller, focusing on the actual error origin.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail at line L, column C (operation: Operation, component: Component) caused by: underlying error
func (e *LexError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Line > 0 {
		b.WriteString(fmt.Sprintf(" at line %d, column %d", e.Line, e.Column))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with Go's standard error handling functions like errors.Is and errors.As.
func (e *LexError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a LexError with the same code.
func (e *LexError) Is(target error) bool {
	t, ok := target.(*LexError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *LexError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
