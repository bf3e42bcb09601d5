package helpers

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a fresh random UUID string.
func GenerateUUID() string {
	return uuid.New().String()
}

// IsDigitString reports whether s is exactly n ASCII digits. Fixed-length
// identifier fields (tax id, registry id, postal code) are stored as digit
// strings so leading zeros survive.
func IsDigitString(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
