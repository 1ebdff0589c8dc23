package tag

import "errors"

var (
	ErrInvalidInteger = errors.New("invalid integer")
	ErrInvalidFloat   = errors.New("invalid floating point value")
	ErrOutOfRange     = errors.New("value out of range")
	ErrUnknownKind    = errors.New("unknown tag kind")
)
