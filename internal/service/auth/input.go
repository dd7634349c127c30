package auth

import (
	"unicode/utf8"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (i *RegisterInput) normalize() {
	i.Name = domain.NormalizeText(i.Name)
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate checks the registration fields. Call after normalization.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch n := utf8.RuneCountInString(i.Name); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "required"})
	case n < domain.MinNameLength:
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "must be at least 2 characters"})
	case n > domain.MaxNameLength:
		errs = append(errs, domain.FieldError{Field: "nombre", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.IsValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < domain.MinPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	case len(i.Password) > domain.MaxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	return domain.NewValidationErrors(errs)
}
