package extract

import "errors"

var (
	// ErrPDFNotFound indicates the input file does not exist.
	// Raised before any parse attempt.
	ErrPDFNotFound = errors.New("pdf not found")
)
