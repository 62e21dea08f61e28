package models

import "strings"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// User is an application account. Email is the identity key and is matched
// case-insensitively everywhere. Passwords are stored in the clear, matching
// the behaviour of the legacy dashboard this replaces.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// Public strips the password for anything that leaves the server.
func (u User) Public() User {
	u.Password = ""
	return u
}

// DefaultUsers seeds the account list on first run.
func DefaultUsers() []User {
	return []User{
		{
			Name:     "Sly Ehis",
			Email:    "slyehis@gmail.com",
			Role:     RoleAdmin,
			Password: "Excellence@734",
		},
		{
			Name:     "Nta Elizabeth",
			Email:    "ntaelizabeth7@gmail.com",
			Role:     RoleAdmin,
			Password: "password123",
		},
		{
			Name:     "Admin User",
			Email:    "admin@nationaldaily.com",
			Role:     RoleAdmin,
			Password: "password123",
		},
		{
			Name:     "Editor User",
			Email:    "editor@nationaldaily.com",
			Role:     RoleEditor,
			Password: "password123",
		},
	}
}
