// Command lexitable-server serves the LexiTable REST API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/lexitable/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lexitable-server: %v\n", err)
		os.Exit(1)
	}
}
