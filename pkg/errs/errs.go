// Package errs holds the two error classes every option check reports:
// a value of the wrong kind, or a value of the right kind that makes no sense.
package errs

import(
	"errors"
	"fmt"
)

var(
	ErrType  = errors.New("type error")
	ErrValue = errors.New("value error")
)

// Typef wraps ErrType with a message.
func Typef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrType, fmt.Sprintf(format, args...))
}

// Valuef wraps ErrValue with a message.
func Valuef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValue, fmt.Sprintf(format, args...))
}
