package identity

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxUsernameLength is the platform limit for real player usernames.
	MaxUsernameLength = 16
	// MaxLenientUsernameLength bounds names accepted when invalid usernames are allowed.
	MaxLenientUsernameLength = 36
)

var strictUsernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// StrictUsername reports whether name is a valid platform username:
// 1 to 16 characters drawn from letters, digits and underscore.
func StrictUsername(name string) bool {
	if name == "" || len(name) > MaxUsernameLength {
		return false
	}
	return strictUsernamePattern.MatchString(name)
}

// LenientUsername reports whether name is acceptable when the server allows
// invalid usernames: non-empty valid UTF-8 of at most MaxLenientUsernameLength
// runes, without control characters. Spaces are allowed.
func LenientUsername(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	if utf8.RuneCountInString(name) > MaxLenientUsernameLength {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
