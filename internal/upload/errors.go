package upload

import "errors"

var (
	// ErrQuotaExceeded indicates the admission check refused the upload.
	ErrQuotaExceeded = errors.New("not enough storage space")
	// ErrInvalidSize is returned for a negative file size.
	ErrInvalidSize = errors.New("invalid file size")
)
