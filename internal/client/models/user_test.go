package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayNameAndInitials(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		display  string
		initials string
		email    string
	}{
		{"nil user", nil, "User", "U", "User"},
		{"full name", &User{FirstName: "jo", LastName: "smith", Email: "jo@example.org"}, "jo smith", "JS", "jo@example.org"},
		{"first name only", &User{FirstName: "ana"}, "ana", "A", "User"},
		{"last name only falls to username", &User{LastName: "x", Username: "payadmin"}, "payadmin", "P", "User"},
		{"nothing", &User{}, "User", "U", "User"},
		{"unicode", &User{FirstName: "émile", LastName: "ørsted"}, "émile ørsted", "ÉØ", "User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.user.DisplayName())
			assert.Equal(t, tt.initials, tt.user.Initials())
			assert.Equal(t, tt.email, tt.user.EmailOrDefault())
		})
	}
}
