// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a keychain owner. Identity is keyed by email.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login identifier, unique across users.
	Name      string    // The user's display name or real name.
	QRCodes   []string  // Code values this user has linked a profile to.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// HasCode reports whether the code value is already in the user's linked list.
func (u *User) HasCode(code string) bool {
	return slices.Contains(u.QRCodes, code)
}

// AddCode appends the code value once. It reports whether the list changed.
func (u *User) AddCode(code string) bool {
	if u.HasCode(code) {
		return false
	}
	u.QRCodes = append(u.QRCodes, code)

	return true
}
