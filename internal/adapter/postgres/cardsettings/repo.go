// Package cardsettings implements the CardSettings repository using PostgreSQL.
package cardsettings

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/domain"
)

const settingsColumns = `user_id, front_key, back_key, hint_key, statuses, tables, updated_at`

// Repo provides card_settings persistence backed by PostgreSQL.
// Empty statuses/tables arrays store the "all" selection.
type Repo struct {
	db postgres.Querier
}

// New creates a new card settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type settingsRow struct {
	UserID    uuid.UUID `db:"user_id"`
	FrontKey  string    `db:"front_key"`
	BackKey   string    `db:"back_key"`
	HintKey   *string   `db:"hint_key"`
	Statuses  []string  `db:"statuses"`
	Tables    []int64   `db:"tables"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r settingsRow) toDomain() *domain.CardSettings {
	statuses := make([]domain.WordStatus, 0, len(r.Statuses))
	for _, s := range r.Statuses {
		statuses = append(statuses, domain.WordStatus(s))
	}
	return &domain.CardSettings{
		UserID:    r.UserID,
		FrontKey:  r.FrontKey,
		BackKey:   r.BackKey,
		HintKey:   r.HintKey,
		Statuses:  domain.Only(statuses...),
		Tables:    domain.Only(r.Tables...),
		UpdatedAt: r.UpdatedAt,
	}
}

// Get returns the stored settings. Users who never saved any get
// domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.CardSettings, error) {
	var row settingsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+settingsColumns+` FROM card_settings WHERE user_id = $1`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "card_settings", userID)
	}
	return row.toDomain(), nil
}

// Upsert stores the settings, replacing any previous row.
func (r *Repo) Upsert(ctx context.Context, s domain.CardSettings) (*domain.CardSettings, error) {
	statuses := make([]string, 0, len(s.Statuses.Members()))
	for _, st := range s.Statuses.Members() {
		statuses = append(statuses, string(st))
	}
	tables := s.Tables.Members()
	if tables == nil {
		tables = []int64{}
	}

	var row settingsRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO card_settings (user_id, front_key, back_key, hint_key, statuses, tables, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		     front_key = EXCLUDED.front_key,
		     back_key = EXCLUDED.back_key,
		     hint_key = EXCLUDED.hint_key,
		     statuses = EXCLUDED.statuses,
		     tables = EXCLUDED.tables,
		     updated_at = now()
		 RETURNING `+settingsColumns,
		s.UserID, s.FrontKey, s.BackKey, s.HintKey, statuses, tables)
	if err != nil {
		return nil, postgres.MapError(err, "card_settings", s.UserID)
	}
	return row.toDomain(), nil
}
