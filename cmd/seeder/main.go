// Command seeder creates a demo account with a sample word set.
// It is intended for local development, not as part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        log what would be created without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/authmethod"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/lexitable/internal/adapter/postgres/user"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/word"
	"github.com/heartmarshall/lexitable/internal/adapter/postgres/wordset"
	"github.com/heartmarshall/lexitable/internal/app"
	"github.com/heartmarshall/lexitable/internal/app/seeder"
	"github.com/heartmarshall/lexitable/internal/auth"
	"github.com/heartmarshall/lexitable/internal/config"
	authsvc "github.com/heartmarshall/lexitable/internal/service/auth"
	"github.com/heartmarshall/lexitable/internal/service/vocab"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "log what would be created without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and auth settings).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, appCfg.Database.DSN, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	wordSets := wordset.New(pool)

	accounts := authsvc.NewService(
		logger, users, token.New(pool), authmethod.New(pool), txm, nil,
		auth.NewJWTManager(appCfg.Auth.JWTSecret, appCfg.Auth.JWTIssuer, appCfg.Auth.AccessTokenTTL, appCfg.Auth.OAuthStateTTL),
		auth.NewPasswordHasher(appCfg.Auth.PasswordHashCost),
		appCfg.Auth,
	)
	words := vocab.NewService(logger, wordSets, word.New(pool), appCfg.Vocab)

	pipeline := seeder.NewPipeline(logger, accounts, words, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
