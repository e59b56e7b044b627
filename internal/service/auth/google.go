package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/domain"
)

// ErrOAuthDisabled is returned when Google sign-in is not configured.
var ErrOAuthDisabled = fmt.Errorf("google sign-in is not configured: %w", domain.ErrNotFound)

// GoogleAuthURL returns the consent URL for a client waiting on a loopback
// redirect. The client's state travels inside a signed server state.
func (s *Service) GoogleAuthURL(ctx context.Context, input GoogleStartInput) (string, error) {
	if s.oauth == nil {
		return "", ErrOAuthDisabled
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	state, err := s.jwt.SignState(auth.OAuthState{
		RedirectURI: input.RedirectURI,
		ClientState: input.ClientState,
	})
	if err != nil {
		return "", fmt.Errorf("auth.GoogleAuthURL: %w", err)
	}
	return s.oauth.AuthCodeURL(state), nil
}

// ParseOAuthState verifies the state returned by Google in the callback.
// Forged or expired states yield ErrUnauthorized.
func (s *Service) ParseOAuthState(raw string) (auth.OAuthState, error) {
	st, err := s.jwt.ParseState(raw)
	if err != nil {
		return auth.OAuthState{}, fmt.Errorf("auth.ParseOAuthState: %w", domain.ErrUnauthorized)
	}
	return st, nil
}

// LoginWithGoogle exchanges an authorization code and signs the user in.
// Unknown identities are registered; an existing password account with the
// same email gets the Google method linked.
func (s *Service) LoginWithGoogle(ctx context.Context, code string) (*AuthResult, error) {
	if s.oauth == nil {
		return nil, ErrOAuthDisabled
	}
	if code == "" || len(code) > 4096 {
		return nil, domain.NewValidationError("code", "invalid")
	}

	identity, err := s.oauth.VerifyCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle verify: %w", err)
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))

	am, err := s.authMethods.GetByOAuth(ctx, domain.AuthMethodGoogle, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.LoginWithGoogle get auth method: %w", err)
	}

	var user *domain.User
	switch {
	case am != nil:
		user, err = s.users.GetByID(ctx, am.UserID)
		if err != nil {
			return nil, fmt.Errorf("auth.LoginWithGoogle get user: %w", err)
		}
		if profileChanged(user, identity) {
			user, err = s.users.Update(ctx, user.ID, identity.Name, identity.AvatarURL)
			if err != nil {
				return nil, fmt.Errorf("auth.LoginWithGoogle update profile: %w", err)
			}
		}

	default:
		user, err = s.users.GetByEmail(ctx, identity.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.LoginWithGoogle get user by email: %w", err)
		}
		if user != nil {
			if err := s.linkGoogle(ctx, user, identity); err != nil {
				return nil, err
			}
		} else {
			user, err = s.registerGoogleUser(ctx, identity)
			if err != nil {
				return nil, err
			}
		}
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via google", slog.String("user_id", user.ID.String()))

	return result, nil
}

func (s *Service) linkGoogle(ctx context.Context, user *domain.User, identity *auth.OAuthIdentity) error {
	_, err := s.authMethods.Create(ctx, &domain.AuthMethod{
		UserID:     user.ID,
		Method:     domain.AuthMethodGoogle,
		ProviderID: &identity.ProviderID,
	})
	// A concurrent callback may have linked it already.
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("auth.LoginWithGoogle link: %w", err)
	}

	s.log.InfoContext(ctx, "google linked to existing account", slog.String("user_id", user.ID.String()))
	return nil
}

func (s *Service) registerGoogleUser(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	var created *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		name := derefOrEmpty(identity.Name)
		if name == "" {
			name = emailPrefix(identity.Email)
		}

		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:        uuid.New(),
			Email:     identity.Email,
			Name:      name,
			AvatarURL: identity.AvatarURL,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.authMethods.Create(txCtx, &domain.AuthMethod{
			UserID:     user.ID,
			Method:     domain.AuthMethodGoogle,
			ProviderID: &identity.ProviderID,
		}); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost a race with a parallel callback for the same identity.
			am, retryErr := s.authMethods.GetByOAuth(ctx, domain.AuthMethodGoogle, identity.ProviderID)
			if retryErr == nil {
				if user, retryErr := s.users.GetByID(ctx, am.UserID); retryErr == nil {
					return user, nil
				}
			}
		}
		return nil, fmt.Errorf("auth.LoginWithGoogle register: %w", err)
	}

	return created, nil
}
