package user

import (
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/domain"
)

// UpdateProfileInput is a partial profile update. Nil fields are kept.
type UpdateProfileInput struct {
	Name  *string
	Email *string
}

func (i *UpdateProfileInput) normalize() {
	if i.Name != nil {
		n := strings.TrimSpace(*i.Name)
		i.Name = &n
	}
	if i.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &e
	}
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(*i.Name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Email != nil {
		email := *i.Email
		switch {
		case email == "":
			errs = append(errs, domain.FieldError{Field: "email", Message: "cannot be empty"})
		case len(email) > 254:
			errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
		default:
			if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
				errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required"})
	}
	var ve *domain.ValidationError
	if err := auth.ValidatePassword("newPassword", i.NewPassword); errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	} else if i.NewPassword == i.CurrentPassword {
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must differ from the current password"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
