package auth

import (
	"context"
	"errors"

	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/auth"
	"github.com/frahmantamala/hr-portal/internal/core/record"
	"gorm.io/gorm"
)

// Repository stores credentials in the users table.
type Repository struct {
	*record.Store[auth.User]
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Store: record.NewStore[auth.User](db)}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var u auth.User
	err := r.DB().WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*auth.User, error) {
	return r.Get(ctx, id)
}
