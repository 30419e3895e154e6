package codec

import "errors"

var (
	// ErrEncodeInconsistency reports a document whose structure disagrees
	// with its cached count or size.
	ErrEncodeInconsistency = errors.New("inconsistent document")

	ErrNotDocument = errors.New("not a tny document")
)
