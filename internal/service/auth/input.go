package auth

import (
	"errors"
	"net"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/domain"
)

const (
	maxNameLen  = 100
	maxEmailLen = 254
)

// RegisterInput holds parameters for email + password registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	if err := auth.ValidatePassword("password", i.Password); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for email + password sign-in.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GoogleStartInput holds where the OAuth result must be delivered.
type GoogleStartInput struct {
	RedirectURI string
	ClientState string
}

// Validate accepts only loopback http redirects, so an access token can never
// be handed to a third-party host.
func (i GoogleStartInput) Validate() error {
	var errs []domain.FieldError

	if i.RedirectURI == "" {
		errs = append(errs, domain.FieldError{Field: "redirect_uri", Message: "required"})
	} else if !isLoopbackURL(i.RedirectURI) {
		errs = append(errs, domain.FieldError{Field: "redirect_uri", Message: "must be a loopback http URL"})
	}

	if i.ClientState == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	} else if len(i.ClientState) > 256 {
		errs = append(errs, domain.FieldError{Field: "state", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isLoopbackURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "http" {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}
