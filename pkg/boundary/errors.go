package boundary

import "errors"

var (
	ErrDirection       = errors.New("invalid direction")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSizeMismatch    = errors.New("number of boundary points differs")
	ErrNilData         = errors.New("nil data")
	ErrNumPoints       = errors.New("number of boundary points must be positive")
)
