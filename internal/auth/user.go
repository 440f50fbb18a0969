package auth

import (
	"github.com/frahmantamala/hr-portal/internal"
	"github.com/frahmantamala/hr-portal/internal/core/record"
)

// User is a login credential. It is not an Employee; the two are unrelated.
type User struct {
	record.Model
	Email        string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"column:full_name;not null" json:"full_name"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Principal is the request-scoped view of u.
func (u *User) Principal() *internal.Principal {
	return &internal.Principal{UserID: u.ID, Email: u.Email, FullName: u.FullName}
}
