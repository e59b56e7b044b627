package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodType is the kind of credential a user signs in with.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
	AuthMethodGoogle   AuthMethodType = "google"
)

func (m AuthMethodType) String() string { return string(m) }

func (m AuthMethodType) IsValid() bool {
	return m == AuthMethodPassword || m == AuthMethodGoogle
}

// AuthMethod is one credential of a user. A user may have both a password
// and a Google identity.
type AuthMethod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Method       AuthMethodType
	ProviderID   *string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
