package errors

import "github.com/mwantia/fsattr/data"

// UnsupportedAttribute reports a write to an unknown or read-only attribute.
func UnsupportedAttribute(name string) error {
	return newError(data.ErrUnsupported, "'%s' is unknown or read-only attribute", name)
}
