package openapi

import (
	"regexp"
)

var objectIDValidationRegex = regexp.MustCompile("^[0-9a-f]{24}$")

// IsObjectID reports whether the string is a well formed identifier, the
// format the service uses for ingredients and orders.
func IsObjectID(s string) bool {
	return objectIDValidationRegex.MatchString(s)
}
