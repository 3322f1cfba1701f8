package filesystem

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/pkg/errors"
)

// homeDirectory computes the home directory of the specified user, or of the
// current user if username is empty.
func homeDirectory(username string) (string, error) {
	if username == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "unable to compute path to home directory")
		}
		return home, nil
	}
	u, err := user.Lookup(username)
	if err != nil {
		return "", errors.Wrap(err, "unable to lookup user")
	}
	return u.HomeDir, nil
}

// expandTilde performs tilde expansion of paths beginning with ~/ or
// ~<username>/. On Windows, ~\ and ~<username>\ are also supported, since
// backslash is a path separator there.
func expandTilde(path string) (string, error) {
	// Only process relevant paths.
	if path == "" || path[0] != '~' {
		return path, nil
	}

	// Split the path at the first separator into the username and the
	// remaining subpath. Path separators are always single-byte.
	username, remaining := path[1:], ""
	for i := 1; i < len(path); i++ {
		if os.IsPathSeparator(path[i]) {
			username, remaining = path[1:i], path[i+1:]
			break
		}
	}

	// Resolve the home directory and join the subpath.
	home, err := homeDirectory(username)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, remaining), nil
}

// Normalize normalizes a path, expanding home directory tildes, converting it
// to an absolute path, and cleaning the result.
func Normalize(path string) (string, error) {
	// Expand any leading tilde.
	path, err := expandTilde(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to perform tilde expansion")
	}

	// Convert to an absolute path. This will also invoke filepath.Clean.
	path, err = filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to compute absolute path")
	}

	// Success.
	return path, nil
}
