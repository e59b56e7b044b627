package auth

import (
	"time"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// AuthResult is a freshly issued token pair and the signed-in user.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *domain.User
}
