package edit

import "strings"

// Trim strips leading and trailing whitespace runs, leaving internal
// whitespace untouched. It is applied only when seeding an input surface
// from an element's captured content, never to a value being committed
// back.
func Trim(s string) string {
	return strings.TrimSpace(s)
}
