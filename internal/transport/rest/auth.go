package rest

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/domain"
	authsvc "github.com/heartmarshall/lexitable/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
	Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	Logout(ctx context.Context) error
	GoogleAuthURL(ctx context.Context, input authsvc.GoogleStartInput) (string, error)
	ParseOAuthState(raw string) (auth.OAuthState, error)
	LoginWithGoogle(ctx context.Context, code string) (*authsvc.AuthResult, error)
}

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

// CookieConfig describes the session cookie carrying the access token.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler serves the sign-in endpoints.
type AuthHandler struct {
	svc    authService
	users  profileService
	cookie CookieConfig
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, users profileService, cookie CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, users: users, cookie: cookie, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type authResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.LoginWithPassword(r.Context(), authsvc.LoginPasswordInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, domain.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setSession(w, result)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Register handles POST /users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Register(r.Context(), authsvc.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setSession(w, result)
	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Refresh(r.Context(), authsvc.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.setSession(w, result)
	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /auth/logout. The cookie is cleared even when the
// caller is no longer authenticated.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Profile handles GET /auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// GoogleStart handles GET /auth/google?redirect_uri=…&state=… by redirecting
// to the Google consent page.
func (h *AuthHandler) GoogleStart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target, err := h.svc.GoogleAuthURL(r.Context(), authsvc.GoogleStartInput{
		RedirectURI: q.Get("redirect_uri"),
		ClientState: q.Get("state"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// GoogleCallback handles GET /auth/google/callback. Once the state verifies,
// every outcome is posted to the client's loopback redirect as
// status=success|error with the client's own state.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st, err := h.svc.ParseOAuthState(q.Get("state"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	deliver := func(fields map[string]string) {
		fields["state"] = st.ClientState
		writeHandoff(w, st.RedirectURI, fields)
	}
	fail := func(message string) {
		deliver(map[string]string{"status": "error", "message": message})
	}

	if e := q.Get("error"); e != "" {
		fail("google sign-in was cancelled: " + e)
		return
	}

	result, err := h.svc.LoginWithGoogle(r.Context(), q.Get("code"))
	if err != nil {
		h.log.WarnContext(r.Context(), "google sign-in failed", slog.String("error", err.Error()))
		switch {
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrValidation):
			fail("google sign-in was rejected")
		default:
			fail("google sign-in is unavailable, try again later")
		}
		return
	}

	h.setSession(w, result)
	deliver(map[string]string{"status": "success", "token": result.AccessToken})
}

// handoffPage posts the sign-in outcome to the client's loopback listener.
// A form body keeps the token out of browser history and proxy logs.
var handoffPage = template.Must(template.New("handoff").Parse(
	`<!doctype html><html><head><meta charset="utf-8"><title>LexiTable</title></head>` +
		`<body onload="document.forms[0].submit()"><form method="post" action="{{.Action}}">` +
		`{{range $name, $value := .Fields}}<input type="hidden" name="{{$name}}" value="{{$value}}">{{end}}` +
		`<noscript><button type="submit">Continue to LexiTable</button></noscript></form></body></html>`))

type handoff struct {
	Action string
	Fields map[string]string
}

func writeHandoff(w http.ResponseWriter, action string, fields map[string]string) {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	h.Set("Referrer-Policy", "no-referrer")
	w.WriteHeader(http.StatusOK)
	_ = handoffPage.Execute(w, handoff{Action: action, Fields: fields})
}

func (h *AuthHandler) setSession(w http.ResponseWriter, result *authsvc.AuthResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.AccessToken,
		Path:     "/",
		MaxAge:   int(result.ExpiresIn / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func toAuthResponse(result *authsvc.AuthResult) authResponse {
	return authResponse{
		User:         toUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int(result.ExpiresIn / time.Second),
	}
}
