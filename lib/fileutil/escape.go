// Package fileutil provides helpers for deriving safe file and directory names.
package fileutil

import (
	"strings"
)

// EscapeName escapes a name for safe use as a single file or directory
// name. Every rune that is not an ASCII letter, digit, dot, or dash is
// replaced with an underscore, so path separators and shell metacharacters
// can never leak into a path segment. The result always has the same
// length as the input.
func EscapeName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if isSafeRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-':
		return true
	}
	return false
}
