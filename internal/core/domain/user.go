package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User models an account in the directory. PasswordHash never leaves the
// process: it is excluded from JSON and stripped by the transport schemas.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// ValidStatus reports whether s is one of the enumerated account statuses.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}

// ValidID reports whether s is a well-formed user identifier: 24 hexadecimal
// characters, the textual form of a document ObjectID. Checked before any
// lookup so malformed ids yield 400 rather than 404.
func ValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
