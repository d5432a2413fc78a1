package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// User is the profile cached next to the access token.
type User struct {
	ID        any    `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// DisplayName prefers "First Last", then "First", then the username, then
// the literal "User". A nil user is displayed as "User".
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return "User"
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	}
	return "User"
}

// Initials follows the same preference order as DisplayName and falls back
// to "U".
func (u *User) Initials() string {
	switch {
	case u == nil:
		return "U"
	case u.FirstName != "" && u.LastName != "":
		return strings.ToUpper(firstRune(u.FirstName) + firstRune(u.LastName))
	case u.FirstName != "":
		return strings.ToUpper(firstRune(u.FirstName))
	case u.Username != "":
		return strings.ToUpper(firstRune(u.Username))
	}
	return "U"
}

// EmailOrDefault returns the e-mail address or "User" when unknown.
func (u *User) EmailOrDefault() string {
	if u == nil || u.Email == "" {
		return "User"
	}
	return u.Email
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
