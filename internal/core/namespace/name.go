// Package namespace provides dotted-name helpers
package namespace

import "strings"

// Parent returns the dotted name one segment up, or "" for a top-level name.
// Parent("a.b.c") == "a.b"; Parent("a") == "".
func Parent(dotted string) string {
	idx := strings.LastIndex(dotted, ".")
	if idx < 0 {
		return ""
	}
	return dotted[:idx]
}

// Leaf returns the final segment of a dotted name.
// Leaf("a.b.c") == "c"; Leaf("a") == "a".
func Leaf(dotted string) string {
	idx := strings.LastIndex(dotted, ".")
	if idx < 0 {
		return dotted
	}
	return dotted[idx+1:]
}

// ValidName reports whether dotted is a well-formed dotted identifier:
// non-empty segments separated by single dots, no leading or trailing dot.
func ValidName(dotted string) bool {
	if dotted == "" {
		return false
	}
	for _, seg := range strings.Split(dotted, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}
