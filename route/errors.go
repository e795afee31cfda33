package route

import (
	"errors"
)

var (
	// ErrConfig is wrapped by every error caused by a misconfigured [Registry].
	// These indicate a bug in the registration code, not bad user input.
	ErrConfig = errors.New("route configuration error")

	ErrUnregisteredType    = errors.New("unregistered placeholder type")
	ErrUnregisteredHandler = errors.New("unregistered handler")
	ErrUnhandledType       = errors.New("unhandled placeholder type")
	ErrUnhandledQuestion   = errors.New("unhandled question descriptor")
	ErrDuplicateShape      = errors.New("duplicate shape")

	// ErrInvalidNumber is returned when a number list entry can't be parsed. This is bad user input, not misconfiguration.
	ErrInvalidNumber = errors.New("invalid number")
)
