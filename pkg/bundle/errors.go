package bundle

import "errors"

var (
	ErrNotFound      = errors.New("bundle: not found")
	ErrLoadFailed    = errors.New("bundle: load failed")
	ErrInvalidBundle = errors.New("bundle: invalid document")
	ErrNoBucket      = errors.New("bundle: s3 bucket required")
)
