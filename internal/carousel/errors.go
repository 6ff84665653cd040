package carousel

import "errors"

var (
	// ErrUnknownMethod is returned by Invoke for a method name the carousel
	// does not expose.
	ErrUnknownMethod = errors.New("unknown carousel method")

	// ErrUnknownOption is returned when getting or setting an option that
	// does not exist.
	ErrUnknownOption = errors.New("unknown carousel option")

	// ErrInvalidOption is returned when an option value has the wrong type
	// or is out of range.
	ErrInvalidOption = errors.New("invalid carousel option")

	// ErrInvalidArguments is returned by Invoke when a method is called with
	// the wrong number of arguments.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrDestroyed is returned by operations on a destroyed carousel.
	ErrDestroyed = errors.New("carousel destroyed")

	// ErrNoSurface is returned by New when no surface is given.
	ErrNoSurface = errors.New("carousel needs a surface")
)
