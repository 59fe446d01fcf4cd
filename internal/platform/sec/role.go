// Copyright (c) 2026 Jhair Studio. All rights reserved.

package sec

// # Admin Roles

// UserRole represents the authorization level granted to an admin account.
type UserRole string

const (
	// Unrestricted access to all content and admin accounts
	RoleAdmin UserRole = "admin"

	// Can edit site content but cannot manage admin accounts
	RoleEditor UserRole = "editor"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-20) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 20
	case RoleEditor:
		return 10
	default:
		return 0
	}
}
