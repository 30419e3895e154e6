package conv

import "errors"

var (
	ErrNotContainer = errors.New("top level value is not a map or list")
	ErrUnsupported  = errors.New("unsupported value")
)
