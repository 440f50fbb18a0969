package auth

import (
	"net/url"
	"strings"

	"github.com/frahmantamala/hr-portal/internal/core/form"
)

// LoginDTO is the submitted sign-in form.
type LoginDTO struct {
	Email    string
	Password string
}

// ParseLogin trims and lower-cases the email. The password is taken as typed.
func ParseLogin(v url.Values) LoginDTO {
	return LoginDTO{
		Email:    NormalizeEmail(v.Get("email")),
		Password: v.Get("password"),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUserDTO provisions a credential from the command line.
type NewUserDTO struct {
	Email    string
	FullName string
	Password string
}

const minPasswordLength = 8

func (d NewUserDTO) Validate() form.Errors {
	p := form.NewParser(url.Values{
		"email":     {d.Email},
		"full_name": {d.FullName},
		"password":  {d.Password},
	})
	email := p.Email("email", "email is required")
	p.Check(email == "" || strings.Contains(email, "@"), "email", "email is not valid")
	p.Required("full_name", "name is required")
	p.Check(len(d.Password) >= minPasswordLength, "password", "password must be at least 8 characters")
	return p.Errors()
}
