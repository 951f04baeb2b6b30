package carousel

import "errors"

var (
	// ErrInvalidConfiguration is returned by New for a malformed slide set or option.
	ErrInvalidConfiguration = errors.New("invalid carousel configuration")

	// ErrInvalidArgument is returned by Paginate for a step other than +1 or -1.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned by JumpTo for an index outside the slide set.
	ErrIndexOutOfRange = errors.New("index out of range")
)
