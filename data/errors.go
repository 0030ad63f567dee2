package data

import "errors"

// Standard errors that backends and attribute views should use.
var (
	// Path resolution errors
	ErrInvalidPath  = errors.New("fsattr: invalid path detected")
	ErrTooManyLinks = errors.New("fsattr: too many levels of symbolic links")
	ErrNotExist     = errors.New("fsattr: file does not exist")
	ErrExist        = errors.New("fsattr: file already exists")

	// Attribute errors
	ErrUnsupported = errors.New("fsattr: unsupported operation")
)
