// Copyright (c) 2026 Jhair Studio. All rights reserved.

package auth

import "context"

// UserRepository abstracts admin account storage.
type UserRepository interface {
	FindByUsername(context context.Context, username string) (*User, error)
	FindByID(context context.Context, id string) (*User, error)
	Create(context context.Context, user *User) error
}
