package lexiapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// AuthResult is the outcome of a successful sign-in or registration.
type AuthResult struct {
	User        *domain.User
	AccessToken string
	ExpiresIn   time.Duration
}

// ProfileUpdate changes the name and/or email. Nil fields are kept.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*AuthResult, error) {
	var out authDTO
	if err := c.doJSON(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	if err := c.tokens.Save(out.AccessToken); err != nil {
		return nil, err
	}
	return &AuthResult{
		User:        out.User.toDomain(),
		AccessToken: out.AccessToken,
		ExpiresIn:   time.Duration(out.ExpiresIn) * time.Second,
	}, nil
}

// Login signs in with email and password and stores the access token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.authenticate(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account and signs it in.
func (c *Client) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	return c.authenticate(ctx, "/users/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

// Logout ends the session on the server and forgets it locally. The local
// state is cleared even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := c.ClearSession(); clearErr != nil {
		return errors.Join(err, clearErr)
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil
	}
	return err
}

// Profile returns the signed-in user. A missing or expired session yields
// an error wrapping domain.ErrUnauthorized.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var out userDTO
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// Me returns the signed-in user from the users resource.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out userDTO
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// UpdateProfile updates the signed-in user.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*domain.User, error) {
	var out userDTO
	if err := c.doJSON(ctx, http.MethodPatch, "/users/me", nil, in, &out); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

// ChangePassword replaces the password after checking the current one.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/change-password", nil, map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	}, nil)
}

// GoogleURL is the address that starts Google sign-in. The server redirects
// back to redirectURI with the given state once the flow finishes.
func (c *Client) GoogleURL(redirectURI, state string) string {
	return c.endpoint("/auth/google", url.Values{
		"redirect_uri": {redirectURI},
		"state":        {state},
	})
}

// SetToken stores a token obtained outside the client, such as the one
// delivered by the OAuth loopback redirect.
func (c *Client) SetToken(token string) error {
	return c.tokens.Save(token)
}
