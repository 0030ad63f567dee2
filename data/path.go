package data

import (
	"fmt"
	"path"
	"strings"
)

// ToAbsolutePath cleans path and ensures it always starts with a leading slash.
func ToAbsolutePath(name string) (string, error) {
	if len(name) == 0 {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}

	return path.Clean(name), nil
}

// ResolveLink returns the absolute path a symbolic link at name points to.
// Relative targets are resolved against the directory containing the link.
func ResolveLink(name, target string) (string, error) {
	if strings.HasPrefix(target, "/") {
		return ToAbsolutePath(target)
	}

	return ToAbsolutePath(path.Join(path.Dir(name), target))
}

// ToRelativePath removes the prefix from path.
// It additionally removes any leading slashes.
func ToRelativePath(path, prefix string) string {
	if prefix == "" {
		return strings.TrimPrefix(path, "/")
	}

	if path == prefix {
		return ""
	}

	relPath := strings.TrimPrefix(path, prefix)
	return strings.TrimPrefix(relPath, "/")
}
