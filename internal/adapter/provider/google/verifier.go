// Package google signs users in with Google's OAuth 2.0 authorization-code flow.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/domain"
)

// Endpoints are Google's OAuth URLs. Tests point them at httptest servers.
type Endpoints struct {
	AuthURL     string
	TokenURL    string
	UserinfoURL string
}

// DefaultEndpoints are the production Google endpoints.
var DefaultEndpoints = Endpoints{
	AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL:    "https://oauth2.googleapis.com/token",
	UserinfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
}

// ErrUnavailable is returned when Google cannot be reached or answers 5xx.
var ErrUnavailable = errors.New("oauth: google unavailable")

// Verifier builds consent URLs and exchanges authorization codes for a
// verified identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	endpoints    Endpoints
	retryDelay   time.Duration
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a Google OAuth verifier from the client credentials and
// the server's registered callback URI.
func NewVerifier(clientID, clientSecret, redirectURI string, endpoints Endpoints, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		endpoints:    endpoints,
		retryDelay:   500 * time.Millisecond,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "google_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// AuthCodeURL returns the consent page URL carrying the given state.
func (v *Verifier) AuthCodeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", v.clientID)
	q.Set("redirect_uri", v.redirectURI)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	q.Set("prompt", "select_account")
	return v.endpoints.AuthURL + "?" + q.Encode()
}

// VerifyCode exchanges an authorization code for the user's identity.
// Invalid codes and unverified emails yield domain.ErrUnauthorized.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	userinfo, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !userinfo.VerifiedEmail {
		return nil, fmt.Errorf("oauth: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.OAuthIdentity{
		Email:      userinfo.Email,
		ProviderID: userinfo.ID,
	}
	if userinfo.Name != "" {
		identity.Name = &userinfo.Name
	}
	if userinfo.Picture != "" {
		identity.AvatarURL = &userinfo.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("email", userinfo.Email))

	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", v.clientID)
	data.Set("client_secret", v.clientSecret)
	data.Set("redirect_uri", v.redirectURI)
	encoded := data.Encode()

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoints.TokenURL, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	resp, err := v.doWithRetry(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", err.Error()))
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("oauth: read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		v.log.ErrorContext(ctx, "google oauth token exchange failed",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errResp.Error))

		if resp.StatusCode == http.StatusBadRequest {
			return "", fmt.Errorf("oauth: invalid or expired code: %w", domain.ErrUnauthorized)
		}
		return "", ErrUnavailable
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		return "", errors.New("oauth: invalid token response")
	}

	return tokenResp.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoints.UserinfoURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)
		return req, nil
	}

	resp, err := v.doWithRetry(ctx, newReq)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.String("error", err.Error()))
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, ErrUnavailable
	}

	var userinfo userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
		return nil, errors.New("oauth: invalid userinfo response")
	}
	if userinfo.ID == "" || userinfo.Email == "" {
		return nil, errors.New("oauth: userinfo is missing id or email")
	}

	return &userinfo, nil
}

// doWithRetry retries once after retryDelay on a network error or a 5xx.
func (v *Verifier) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	var (
		resp *http.Response
		err  error
	)
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(v.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, reqErr := newReq()
		if reqErr != nil {
			return nil, reqErr
		}
		resp, err = v.httpClient.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}
		if resp != nil && attempt == 0 {
			resp.Body.Close()
		}
	}
	return resp, err
}
