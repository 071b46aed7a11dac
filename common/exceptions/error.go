package exceptions

import (
	"errors"
	"fmt"
)

func New(message ...any) error {
	return errors.New(fmt.Sprint(message...))
}

// Cause attaches a message to cause. The result unwraps to cause.
func Cause(cause error, message ...any) error {
	if cause == nil {
		panic("cause on an nil error")
	}
	return &causeError{fmt.Sprint(message...), cause}
}
