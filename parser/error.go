package parser

import (
	"fmt"

	"github.com/juju/errors"
)

// ErrorKind distinguishes a wrapped lex failure from a genuine parse
// failure, per spec.md §4.9's taxonomy.
type ErrorKind uint8

const (
	KindParse ErrorKind = iota
	KindTokenize
)

// Error is the parser's leaf error type. A KindTokenize Error wraps the
// lexer's own message (including its line:column) into one line; parse
// errors never surface lex-level locations of their own, per spec.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func tokenizeError(err error) error {
	return errors.Annotate(&Error{Kind: KindTokenize, Message: err.Error()}, "tokenize")
}

// expected builds the standard "Expected: X, found: Y" parse error.
func (p *parser) expected(want string) error {
	found := "EOF"
	if !p.c.peekIsEOF() {
		found = p.c.peek().String()
	}
	return errors.Trace(&Error{
		Kind:    KindParse,
		Message: fmt.Sprintf("Expected: %s, found: %s", want, found),
	})
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.Trace(&Error{Kind: KindParse, Message: fmt.Sprintf(format, args...)})
}
