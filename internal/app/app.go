package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/cardsettings"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/lexitable/internal/adapter/postgres/user"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/word"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/wordset"
	"github.com/heartmarshall/lexitable/internal/adapter/provider/google"
	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/config"
	authsvc "github.com/heartmarshall/lexitable/internal/service/auth"
	"github.com/heartmarshall/lexitable/internal/service/cards"
	"github.com/heartmarshall/lexitable/internal/service/transfer"
	usersvc "github.com/heartmarshall/lexitable/internal/service/user"
	"github.com/heartmarshall/lexitable/internal/service/vocab"
	"github.com/heartmarshall/lexitable/internal/transport/dataloader"
	"github.com/heartmarshall/lexitable/internal/transport/middleware"
	"github.com/heartmarshall/lexitable/internal/transport/rest"
)

// oauthVerifier stays a nil interface when Google sign-in is not configured.
type oauthVerifier interface {
	AuthCodeURL(state string) string
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

// Run is the API server entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	txm := postgres.NewTxManager(pool)

	schema, err := postgres.NewSchema(pool)
	if err != nil {
		return err
	}

	// 2. Repositories.
	userRepo := userrepo.New(pool)
	authMethodRepo := authmethod.New(pool)
	tokenRepo := token.New(pool)
	wordSetRepo := wordset.New(pool)
	wordRepo := word.New(pool)
	settingsRepo := cardsettings.New(pool)

	// 3. Auth primitives.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL, cfg.Auth.OAuthStateTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	var verifier oauthVerifier
	if cfg.Auth.GoogleEnabled() {
		verifier = google.NewVerifier(
			cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret, cfg.Auth.GoogleRedirectURI,
			google.DefaultEndpoints, logger,
		)
	} else {
		logger.Info("google sign-in disabled: client credentials are not configured")
	}

	// 4. Services.
	authService := authsvc.NewService(
		logger, userRepo, tokenRepo, authMethodRepo, txm, verifier, jwtMgr, hasher, cfg.Auth,
	)
	userService := usersvc.NewService(logger, userRepo, authMethodRepo, tokenRepo, txm, hasher)
	vocabService := vocab.NewService(logger, wordSetRepo, wordRepo, cfg.Vocab)
	transferService := transfer.NewService(logger, wordSetRepo, wordRepo, txm, cfg.Vocab)
	cardsService := cards.NewService(logger, settingsRepo, wordSetRepo, wordRepo, cfg.Vocab)

	// 5. Handlers and routes.
	handlers := rest.Handlers{
		Health: rest.NewHealthHandler(pool, schema, Version, clockwork.NewRealClock()),
		Auth: rest.NewAuthHandler(authService, userService, rest.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}, logger),
		User:  rest.NewUserHandler(userService, logger),
		Vocab: rest.NewVocabHandler(vocabService, transferService, cfg.Server.MaxBodyBytes, logger),
		Cards: rest.NewCardsHandler(cardsService, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(handlers, rest.RouterOptions{
		API: middleware.Chain(
			middleware.Auth(authService, cfg.Auth.CookieName),
			dataloader.Middleware(&dataloader.Repos{WordSet: wordSetRepo}),
			middleware.Logger(logger),
		),
		AuthLimit: limiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	// Outside the router so preflight requests are answered even though no
	// route matches OPTIONS.
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.ClientIP(cfg.Server.TrustProxy),
		middleware.CORS(cfg.CORS),
	)(router)

	// 6. Background jobs.
	jobs, err := NewJobs(ctx, cfg.Jobs.TokenCleanupInterval, authService, logger)
	if err != nil {
		return err
	}
	jobs.Start()
	defer jobs.Stop()

	// 7. HTTP server.
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
