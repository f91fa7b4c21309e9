// Package lexer implements the tokenizer for exprlex's expression language.
//
// A Lexer is an ordered, immutable list of Tokenizers. Each call to
// NewScanner (or ScanString) creates a Scanner with its own cursor over one
// input; the Scanner skips whitespace, offers the current position to every
// Tokenizer in order and returns the first accepted Token.
//
// # Usage
//
//	lx := lexer.New(lexer.WithKeywords(true, "in", "between"))
//	sc := lx.ScanString(`Number IN [10,20,30]`)
//	for {
//	    tok, err := sc.Scan()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(tok)
//	}
//
// # Tokenizers
//
// Every Tokenizer reads characters from a Reader and returns a Result:
// Accept (a token plus the number of trailing characters to give back),
// Reject (the number of characters to give back so the next Tokenizer can
// retry the same position) or End (input exhausted). The default list is
// symbols, numbers, strings, identifiers. Keyword tokenizers are prepended
// so that reserved words win over identifiers.
//
// # Constants
//
// Literal syntax alone decides the constant type:
//
//	1      int32        1L    int64
//	1.5    float64      1.5d  float64
//	2f     float32      5.5m  decimal
//	'a'    string       true  bool
//	null   null
//
// # Errors
//
// Malformed literals and unrecognized characters end the scan with a
// *lexerr.LexError. A Scanner that has failed keeps returning the same error.
package lexer
