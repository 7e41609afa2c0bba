package model

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for malformed constructor arguments such as a negative size.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when a coordinate falls outside a bounded grid.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange is returned by PrintGrid for an empty or inverted window.
	ErrInvalidRange = errors.New("invalid range")
)
