package geometry

import "errors"

var (
	// ErrInvalidValue is returned when a constructor is given a NaN scalar.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidArgument is returned when a slice constructor is given a nil
	// slice or one of the wrong length.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned by Mat3.Get for a row or column outside [0,2].
	ErrIndexOutOfRange = errors.New("index out of range")
)
