package patch

import "errors"

var (
	// ErrPath reports a change whose path does not resolve in the document
	// being patched.
	ErrPath = errors.New("patch path")

	ErrConflict = errors.New("patch conflict")
)
