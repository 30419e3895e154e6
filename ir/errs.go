package ir

import "errors"

var (
	// ErrInvalidStructure is returned by Add when a container, key or value
	// precondition does not hold.
	ErrInvalidStructure = errors.New("invalid structure")

	// ErrAllocation is returned when a key or payload cannot be stored in
	// the wire representation.
	ErrAllocation = errors.New("allocation failure")

	ErrDetached = errors.New("element is detached from its document")
)
