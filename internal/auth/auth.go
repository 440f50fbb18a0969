// Package auth verifies credentials and gates every page behind a signed-in
// session.
package auth

import (
	"context"
)

const (
	LoginPath  = "/auth/login"
	LogoutPath = "/auth/logout"
	HomePath   = "/"
)

type ServiceAPI interface {
	Verify(ctx context.Context, email, password string) (*User, error)
	UserByID(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, dto NewUserDTO) (*User, error)
	HashPassword(password string) (string, error)
}

type RepositoryAPI interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, u *User) error
}
