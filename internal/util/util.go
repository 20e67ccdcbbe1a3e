// Package util provides common utility functions used across the map
// renderer.
package util

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// SanitizeHexColor normalizes an editor-entered color value. A value
// consisting only of hex digits is prefixed with '#'; anything else collapses
// to "#000000". Malformed editor input must never break a render, so there is
// no error return.
func SanitizeHexColor(s string) string {
	if s == "" {
		return "#000000"
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return "#000000"
		}
	}
	return "#" + s
}
