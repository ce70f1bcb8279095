package crosscheck

import "strings"

// NormalizeQuery trims surrounding whitespace from a user submission.
// The boolean is false when nothing is left, in which case the submission
// must be ignored.
func NormalizeQuery(s string) (string, bool) {
	q := strings.TrimSpace(s)
	return q, q != ""
}
