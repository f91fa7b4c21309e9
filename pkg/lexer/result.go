package lexer

import "fmt"

// Outcome is the verdict of one Tokenizer attempt.
type Outcome int

const (
	// Accepted means a token was produced.
	Accepted Outcome = iota
	// Rejected means the tokenizer does not apply at this position.
	Rejected
	// EndOfInput means the input was exhausted before anything was read.
	EndOfInput
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	case EndOfInput:
		return "EndOfInput"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is what a Tokenizer returns. Pushback is the number of characters,
// counted from the last one read, that the Scanner must hand back to the
// input before the next attempt. It never exceeds the number of characters
// the tokenizer read during the attempt.
type Result struct {
	outcome  Outcome
	token    Token
	pushback int
}

// Accept produces tok; pushback trailing characters are returned to the input.
func Accept(tok Token, pushback int) Result {
	return Result{outcome: Accepted, token: tok, pushback: pushback}
}

// Reject declines the position; pushback must equal the number of
// characters read so that the next tokenizer starts from the same place.
func Reject(pushback int) Result {
	return Result{outcome: Rejected, pushback: pushback}
}

// End reports that the input was exhausted.
func End() Result {
	return Result{outcome: EndOfInput}
}

func (r Result) Outcome() Outcome { return r.outcome }
func (r Result) Token() Token     { return r.token }
func (r Result) Pushback() int    { return r.pushback }

func (r Result) String() string {
	switch r.outcome {
	case Accepted:
		return fmt.Sprintf("Accepted(%s, %d)", r.token, r.pushback)
	case Rejected:
		return fmt.Sprintf("Rejected(%d)", r.pushback)
	default:
		return r.outcome.String()
	}
}
