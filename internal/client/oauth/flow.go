// Package oauth runs the browser sign-in through a loopback redirect.
//
// The flow listens on an ephemeral localhost port, opens the API's Google
// sign-in page with that port as the redirect target and waits for the
// API to redirect back with a token or an error.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
)

const (
	callbackPath    = "/callback"
	maxCallbackBody = 16 << 10
)

// ErrTimeout is returned when no callback arrives in time.
var ErrTimeout = errors.New("oauth: timed out waiting for browser sign-in")

// Error is a sign-in failure reported by the API.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return "oauth: sign-in failed"
	}
	return "oauth: " + e.Message
}

type authURLBuilder interface {
	GoogleURL(redirectURI, state string) string
}

// Opener shows url to the user, normally in a browser.
type Opener func(url string) error

// Config controls the loopback listener.
type Config struct {
	Host    string
	Timeout time.Duration
}

// Option customizes a Flow.
type Option func(*Flow)

// WithOpener replaces the system browser launcher.
func WithOpener(open Opener) Option {
	return func(f *Flow) { f.open = open }
}

// WithClock replaces the clock used for the timeout.
func WithClock(c clockwork.Clock) Option {
	return func(f *Flow) { f.clock = c }
}

// WithURLNotifier receives the sign-in URL before the browser is opened so
// it can be shown in case the browser does not start.
func WithURLNotifier(fn func(string)) Option {
	return func(f *Flow) { f.notify = fn }
}

// Flow implements session.OAuthFlow.
type Flow struct {
	urls   authURLBuilder
	cfg    Config
	open   Opener
	clock  clockwork.Clock
	notify func(string)
	log    *slog.Logger
}

func New(urls authURLBuilder, cfg Config, logger *slog.Logger, opts ...Option) *Flow {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	f := &Flow{
		urls:   urls,
		cfg:    cfg,
		open:   OpenBrowser,
		clock:  clockwork.NewRealClock(),
		notify: func(string) {},
		log:    logger.With("component", "oauth"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type outcome struct {
	token string
	err   error
}

// Authorize runs one sign-in and returns the access token. The listener is
// closed when Authorize returns, whatever the outcome.
func (f *Flow) Authorize(ctx context.Context) (string, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(f.cfg.Host, "0"))
	if err != nil {
		return "", fmt.Errorf("oauth: listen: %w", err)
	}

	state := uuid.NewString()
	redirect := "http://" + ln.Addr().String() + callbackPath
	done := make(chan outcome, 1)

	srv := &http.Server{
		Handler:           f.callbackHandler(state, done),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(f.log.Handler(), slog.LevelWarn),
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.log.Warn("callback server", slog.String("error", err.Error()))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	timer := f.clock.NewTimer(f.cfg.Timeout)
	defer timer.Stop()

	authURL := f.urls.GoogleURL(redirect, state)
	f.notify(authURL)
	if err := f.open(authURL); err != nil {
		f.log.Warn("open browser", slog.String("error", err.Error()))
	}
	f.log.Debug("waiting for oauth callback", slog.String("redirect_uri", redirect))

	select {
	case res := <-done:
		return res.token, res.err
	case <-timer.Chan():
		return "", ErrTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// callbackHandler answers the browser and hands the first callback with a
// matching state to done. Mismatched states are rejected and ignored. The
// API posts the outcome as a form, so only the body is read and a token
// placed in the URL is never accepted.
func (f *Flow) callbackHandler(state string, done chan<- outcome) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxCallbackBody)
		if err := r.ParseForm(); err != nil {
			renderPage(w, http.StatusBadRequest, "Malformed sign-in response.")
			return
		}
		q := r.PostForm
		if q.Get("state") != state {
			f.log.Warn("oauth callback with unexpected state")
			renderPage(w, http.StatusBadRequest, "Sign-in link is out of date. Start again from the terminal.")
			return
		}

		var res outcome
		switch token := q.Get("token"); {
		case q.Get("status") == "success" && token != "":
			res.token = token
			renderPage(w, http.StatusOK, "Signed in. You can close this tab and return to the terminal.")
		default:
			res.err = &Error{Message: q.Get("message")}
			renderPage(w, http.StatusOK, "Sign-in failed. Return to the terminal for details.")
		}

		select {
		case done <- res:
		default:
		}
	}).Methods(http.MethodPost)
	return r
}

var page = template.Must(template.New("page").Parse(
	`<!doctype html><html><head><meta charset="utf-8"><title>LexiTable</title></head>` +
		`<body style="font-family:sans-serif;text-align:center;margin-top:4em"><p>{{.}}</p></body></html>`))

func renderPage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = page.Execute(w, msg)
}
