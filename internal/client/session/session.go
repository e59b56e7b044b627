// Package session tracks who is signed in on this client.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/client/lexiapi"
	"github.com/heartmarshall/lexitable/internal/domain"
)

// State of the session. It starts Unknown until Bootstrap has asked the
// server.
type State int

const (
	Unknown State = iota
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}

type authAPI interface {
	Profile(ctx context.Context) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*lexiapi.AuthResult, error)
	Register(ctx context.Context, email, password, name string) (*lexiapi.AuthResult, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, in lexiapi.ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, current, next string) error
	SetToken(token string) error
	ClearSession() error
}

// OAuthFlow obtains an access token from an external sign-in.
type OAuthFlow interface {
	Authorize(ctx context.Context) (string, error)
}

// Snapshot is the session as seen by subscribers.
type Snapshot struct {
	State State
	User  *domain.User
}

// Session is safe for concurrent use. Subscribers are called outside the
// lock, in registration order.
type Session struct {
	api authAPI
	log *slog.Logger

	mu     sync.Mutex
	state  State
	user   *domain.User
	subs   map[int]func(Snapshot)
	order  []int
	nextID int
}

func New(api authAPI, logger *slog.Logger) *Session {
	return &Session{
		api:  api,
		log:  logger.With("component", "session"),
		subs: make(map[int]func(Snapshot)),
	}
}

// Bootstrap asks the server who the current session belongs to. An
// expired or invalid session ends up Anonymous without an error.
func (s *Session) Bootstrap(ctx context.Context) error {
	user, err := s.api.Profile(ctx)
	if err == nil {
		s.set(Authenticated, user)
		return nil
	}

	s.set(Anonymous, nil)
	if errors.Is(err, domain.ErrUnauthorized) {
		if clearErr := s.api.ClearSession(); clearErr != nil {
			s.log.Warn("clear stale session", slog.String("error", clearErr.Error()))
		}
		return nil
	}
	return fmt.Errorf("check session: %w", err)
}

// Login signs in with email and password.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.set(Authenticated, res.User)
	return nil
}

// Register creates the account and then signs in with it.
func (s *Session) Register(ctx context.Context, email, password, name string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	if _, err := s.api.Register(ctx, email, password, name); err != nil {
		return err
	}
	return s.Login(ctx, email, password)
}

// LoginWithOAuth runs the external flow and adopts the token it yields.
func (s *Session) LoginWithOAuth(ctx context.Context, flow OAuthFlow) error {
	token, err := flow.Authorize(ctx)
	if err != nil {
		return err
	}
	if err := s.api.SetToken(token); err != nil {
		return err
	}
	user, err := s.api.Profile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	s.set(Authenticated, user)
	return nil
}

// Logout tells the server and always clears the local session.
func (s *Session) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("logout", slog.String("error", err.Error()))
	}
	s.set(Anonymous, nil)
}

// UpdateProfile changes the current user's name or email.
func (s *Session) UpdateProfile(ctx context.Context, in lexiapi.ProfileUpdate) error {
	user, err := s.api.UpdateProfile(ctx, in)
	if err != nil {
		return err
	}
	s.set(Authenticated, user)
	return nil
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	var errs []domain.FieldError
	if current == "" {
		errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required"})
	}
	var ve *domain.ValidationError
	if err := auth.ValidatePassword("newPassword", next); errors.As(err, &ve) {
		errs = append(errs, ve.Errors...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return s.api.ChangePassword(ctx, current, next)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the signed-in user or nil.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// Subscribe registers fn for every state change and returns a function
// that removes it.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Session) set(state State, user *domain.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	snap := Snapshot{State: state, User: user}
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func validateCredentials(email, password string) error {
	var errs []domain.FieldError
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
