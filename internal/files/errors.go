package files

import "errors"

// ErrInvalidInput indicates a record missing required fields.
var ErrInvalidInput = errors.New("invalid file record")
