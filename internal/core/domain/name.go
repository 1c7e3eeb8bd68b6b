package domain

import "strings"

// nameStripper drops the characters that never survive into an internal name.
var nameStripper = strings.NewReplacer(" ", "", "(", "", ")", "")

// NormalizeName maps an LMS display name to an internal assignment name.
// Spaces and parentheses are removed and the rest is lower-cased; every
// other character is kept. The result is the storage key, so it must stay
// stable for unchanged input.
func NormalizeName(raw string) string {
	return strings.ToLower(nameStripper.Replace(raw))
}
