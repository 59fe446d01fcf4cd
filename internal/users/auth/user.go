// Copyright (c) 2026 Jhair Studio. All rights reserved.

package auth

import "time"

// User is an admin account able to edit the studio's site content.
// The public site has no user accounts; only staff log in.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
