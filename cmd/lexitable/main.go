// Command lexitable is the terminal client of the LexiTable API.
//
// Configuration is read from LEXITABLE_CONFIG (default ./lexitable.yaml),
// a .env file and the environment. Logs go to log.file because the
// terminal belongs to the UI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/lexitable/internal/app"
	"github.com/heartmarshall/lexitable/internal/client/lexiapi"
	"github.com/heartmarshall/lexitable/internal/client/oauth"
	"github.com/heartmarshall/lexitable/internal/client/querycache"
	"github.com/heartmarshall/lexitable/internal/client/router"
	"github.com/heartmarshall/lexitable/internal/client/session"
	"github.com/heartmarshall/lexitable/internal/config"
	"github.com/heartmarshall/lexitable/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lexitable: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	logFile, err := app.OpenLogFile(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := app.NewLoggerTo(logFile, cfg.Log)
	logger.Info("starting client",
		slog.String("version", app.BuildVersion()),
		slog.String("api", cfg.API.BaseURL),
	)

	api, err := lexiapi.New(cfg.API.BaseURL, lexiapi.NewFileTokenStore(cfg.Session.TokenFile), logger)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	sess := session.New(api, logger)
	model := tui.New(ctx, tui.Deps{
		API:     api,
		Session: sess,
		Router:  router.New(sess),
		Cache:   querycache.New(cfg.Cache.Size, cfg.Cache.StaleTime, clock),
		Config:  *cfg,
		Clock:   clock,
		Log:     logger,
	})

	// The flow reports its URL to the model, so it is wired after the model
	// exists.
	model.SetOAuth(oauth.New(api, oauth.Config{
		Host:    cfg.OAuth.CallbackHost,
		Timeout: cfg.OAuth.Timeout,
	}, logger, oauth.WithURLNotifier(model.ShowAuthURL)))

	return tui.Run(ctx, model)
}
