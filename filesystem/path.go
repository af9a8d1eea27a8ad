package filesystem

import (
	"strings"
	"unicode"
)

const pathSep = "/"

// ValidName reports whether seg contains only letters, digits, space, '-', '.' and '_'.
// The empty segment is accepted here; it only arises from leading or repeated slashes.
func ValidName(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ' ', '-', '.', '_':
			continue
		}
		return false
	}
	return true
}

// validatePath rejects empty paths and any segment with characters outside [ValidName].
func validatePath(path string) error {
	if path == "" {
		return &FSError{Code: CodeInvalidSyntax, Path: path}
	}
	for _, seg := range strings.Split(path, pathSep) {
		if !ValidName(seg) {
			return &FSError{Code: CodeInvalidSyntax, Path: path}
		}
	}
	return nil
}

// normalize strips trailing slashes. A path made only of slashes becomes "/".
func normalize(path string) string {
	trimmed := strings.TrimRight(path, pathSep)
	if trimmed == "" && path != "" {
		return pathSep
	}
	return trimmed
}

// splitParent splits a path into the path of its parent and its final segment.
// A bare name has parent "." (the working directory).
func splitParent(path string) (parent, name string) {
	p := normalize(path)
	idx := strings.LastIndex(p, pathSep)
	switch idx {
	case -1:
		return ".", p
	case 0:
		return pathSep, p[1:]
	default:
		return p[:idx], p[idx+1:]
	}
}

func isAbs(path string) bool {
	return strings.HasPrefix(path, pathSep)
}
