package lexer

import (
	"fmt"

	"github.com/oarkflow/usql/token"
)

// Error is a lex-time failure: an unterminated literal, an unterminated
// quoted identifier, an unterminated comment, a comment nesting overflow,
// or an unrecognized character.
type Error struct {
	Message  string
	Location token.Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Location)
}

func errorf(loc token.Location, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Location: loc}
}
