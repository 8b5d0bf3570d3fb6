package utils

import (
	"regexp"
	"unicode/utf8"
)

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	emailRE    = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

// ValidUsername reports whether name is 3-20 characters of letters, digits,
// underscore or hyphen.
func ValidUsername(name string) bool {
	return usernameRE.MatchString(name)
}

// ValidPassword reports whether pw is 3-20 characters long. Any characters
// are allowed.
func ValidPassword(pw string) bool {
	n := utf8.RuneCountInString(pw)
	return n >= 3 && n <= 20
}

// ValidEmail reports whether email looks like an address. The field is
// optional, so empty passes.
func ValidEmail(email string) bool {
	return email == "" || emailRE.MatchString(email)
}
