package documents

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType means the uploaded file is not a format we can
	// extract student information from.
	ErrUnsupportedType = errors.New("unsupported document type")
)
