package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSetup indicates a line handed to ParseSetup without the leading "*".
	ErrNotSetup = errors.New("session: not a setup line")

	// ErrBadSetup indicates a malformed setup line.
	ErrBadSetup = errors.New("session: bad setup line")

	// ErrNoSetup indicates a message before the first setup line.
	ErrNoSetup = errors.New("session: message before any setup line")

	// ErrInvalidSymbol indicates a message symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("session: invalid symbol in message")
)

// LineError ties a failure to its input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }
