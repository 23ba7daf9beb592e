package htmlhelper

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports which helper parameter was rejected
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "Value cannot be null or empty."
	}
	return fmt.Sprintf("%s (parameter '%s')", reason, e.Param)
}

// Is lets errors.Is(err, ErrInvalidArgument) match
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func emptyArgument(param string) error {
	return &ArgumentError{Param: param}
}
