package jsonlogic

import "strings"

// Contains reports whether args[0] contains args[1] as a substring. The match
// is case-sensitive and unanchored. Non-string arguments never match.
func Contains(args ...any) any {
	if len(args) < 2 {
		return false
	}
	haystack, ok := args[0].(string)
	if !ok {
		return false
	}
	needle, ok := args[1].(string)
	if !ok {
		return false
	}
	return strings.Contains(haystack, needle)
}
