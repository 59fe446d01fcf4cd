// Copyright (c) 2026 Jhair Studio. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhairstudio/jhair-server/internal/platform/database/schema"
	"github.com/jhairstudio/jhair-server/internal/platform/dberr"
)

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
FindByUsername retrieves an admin account by its unique username.

Parameters:
  - context: context.Context
  - username: Exact username to match

Returns:
  - *User: The matching account
  - error: NotFound when no such account exists
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	ref := schema.AdminAccount

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		ref.ID, ref.Username, ref.PasswordHash, ref.Role, ref.CreatedAt,
		ref.Table, ref.Username)

	user := &User{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_username")
	}

	return user, nil
}

/*
FindByID retrieves an admin account by its UUID primary key.

Parameters:
  - context: context.Context
  - id: Account UUID

Returns:
  - *User: The matching account
  - error: NotFound when no such account exists
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	ref := schema.AdminAccount

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		ref.ID, ref.Username, ref.PasswordHash, ref.Role, ref.CreatedAt,
		ref.Table, ref.ID)

	user := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}

	return user, nil
}

/*
Create persists a new admin account.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist; ID must be pre-generated)

Returns:
  - error: Conflict on duplicate username, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	ref := schema.AdminAccount

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		ref.Table, ref.ID, ref.Username, ref.PasswordHash, ref.Role)

	_, err := repository.pool.Exec(context, query,
		user.ID, user.Username, user.PasswordHash, user.Role,
	)
	if err != nil {
		return dberr.Wrap(err, "create_user")
	}

	return nil
}
