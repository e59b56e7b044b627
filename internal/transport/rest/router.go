package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	User   *UserHandler
	Vocab  *VocabHandler
	Cards  *CardsHandler
}

// RouterOptions carries middleware applied to parts of the route tree.
// Nil entries are skipped.
type RouterOptions struct {
	// API wraps every non-health route (request id, auth, logging).
	API func(http.Handler) http.Handler
	// AuthLimit rate-limits the credential endpoints.
	AuthLimit func(http.Handler) http.Handler
}

// NewRouter builds the route tree.
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/").Subrouter()
	if opts.API != nil {
		api.Use(mux.MiddlewareFunc(opts.API))
	}

	creds := api.NewRoute().Subrouter()
	if opts.AuthLimit != nil {
		creds.Use(mux.MiddlewareFunc(opts.AuthLimit))
	}
	creds.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	creds.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	creds.HandleFunc("/users/register", h.Auth.Register).Methods(http.MethodPost)
	creds.HandleFunc("/users/change-password", h.User.ChangePassword).Methods(http.MethodPost)

	api.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/profile", h.Auth.Profile).Methods(http.MethodGet)
	api.HandleFunc("/auth/google", h.Auth.GoogleStart).Methods(http.MethodGet)
	api.HandleFunc("/auth/google/callback", h.Auth.GoogleCallback).Methods(http.MethodGet)

	api.HandleFunc("/users/me", h.User.Me).Methods(http.MethodGet)
	api.HandleFunc("/users/me", h.User.UpdateMe).Methods(http.MethodPatch)

	api.HandleFunc("/word-sets", h.Vocab.ListWordSets).Methods(http.MethodGet)
	api.HandleFunc("/word-sets", h.Vocab.CreateWordSet).Methods(http.MethodPost)
	api.HandleFunc("/word-sets/{id:[0-9]+}", h.Vocab.GetWordSetPage).Methods(http.MethodGet)
	api.HandleFunc("/word-sets/{id:[0-9]+}", h.Vocab.UpdateWordSet).Methods(http.MethodPatch)
	api.HandleFunc("/word-sets/{id:[0-9]+}", h.Vocab.DeleteWordSet).Methods(http.MethodDelete)
	api.HandleFunc("/word-sets/{id:[0-9]+}/words", h.Vocab.AddWord).Methods(http.MethodPost)
	api.HandleFunc("/word-sets/{id:[0-9]+}/export", h.Vocab.Export).Methods(http.MethodGet)
	api.HandleFunc("/word-sets/{id:[0-9]+}/import", h.Vocab.Import).Methods(http.MethodPost)
	api.HandleFunc("/words/{id:[0-9]+}", h.Vocab.UpdateWord).Methods(http.MethodPatch)
	api.HandleFunc("/words/{id:[0-9]+}", h.Vocab.DeleteWord).Methods(http.MethodDelete)

	api.HandleFunc("/card-settings", h.Cards.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/card-settings", h.Cards.UpdateSettings).Methods(http.MethodPut)
	api.HandleFunc("/card-settings/count", h.Cards.Count).Methods(http.MethodPost)
	api.HandleFunc("/card-settings/cards", h.Cards.Cards).Methods(http.MethodGet)
	api.HandleFunc("/card-settings/cards/{wordId:[0-9]+}/answer", h.Cards.Answer).Methods(http.MethodPost)

	return r
}
