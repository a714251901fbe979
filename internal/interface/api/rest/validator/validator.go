package validator

import (
	"strings"
)

// ValidateUserID: the id is an opaque match key, no format is enforced
// beyond being non-blank.
func ValidateUserID(s string) (bool, string) {
	id := strings.TrimSpace(s)
	return id != "", id
}
