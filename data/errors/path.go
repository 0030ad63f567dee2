package errors

import "github.com/mwantia/fsattr/data"

func NotExist(path string) error {
	return newError(data.ErrNotExist, "'%s'", path)
}

func Exist(path string) error {
	return newError(data.ErrExist, "'%s'", path)
}

func TooManyLinks(path string, depth int) error {
	return newError(data.ErrTooManyLinks, "'%s' after %d hops", path, depth)
}
