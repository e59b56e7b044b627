package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/lexitable/migrations"
)

// Schema reads the goose version table through the application pool.
type Schema struct {
	provider *goose.Provider
	latest   int64
}

// NewSchema prepares a reader for the embedded migrations.
func NewSchema(pool *pgxpool.Pool) (*Schema, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	s := &Schema{provider: provider}
	if sources := provider.ListSources(); len(sources) > 0 {
		s.latest = sources[len(sources)-1].Version
	}
	return s, nil
}

// SchemaVersion returns the applied version and the newest embedded one.
func (s *Schema) SchemaVersion(ctx context.Context) (applied, latest int64, err error) {
	applied, err = s.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, s.latest, fmt.Errorf("goose db version: %w", err)
	}
	return applied, s.latest, nil
}
