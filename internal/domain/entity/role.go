package entity

import "slices"

// Role is a permission level carried in the access token.
type Role string

const (
	// RoleUser is granted to every account. Keychain owners manage their own profiles.
	RoleUser Role = "user"
	// RoleAdmin issues codes, reads stats and moves snapshots.
	RoleAdmin Role = "admin"
)

var knownRoles = []Role{RoleUser, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return slices.Contains(knownRoles, r)
}

// Roles is the role set of one account.
type Roles []Role

// RolesFor returns the role set for an account; admin is granted on top of user.
func RolesFor(admin bool) Roles {
	if admin {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts the set to token claim values.
func (rs Roles) ToStrings() []string {
	result := make([]string, 0, len(rs))
	for _, r := range rs {
		result = append(result, r.String())
	}

	return result
}

// RolesFromStrings parses token claim values, dropping unknown and repeated entries.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() && !result.Contains(role) {
			result = append(result, role)
		}
	}

	return result
}
