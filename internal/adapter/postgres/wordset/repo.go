// Package wordset implements the WordSet repository using PostgreSQL.
package wordset

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const setColumns = `id, user_id, title, custom_columns, created_at`

// Repo provides word_sets persistence backed by PostgreSQL. Every method is
// scoped to the owning user; a foreign set behaves as missing.
type Repo struct {
	db postgres.Querier
}

// New creates a new word set repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type setRow struct {
	ID            int64     `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Title         string    `db:"title"`
	CustomColumns []byte    `db:"custom_columns"`
	CreatedAt     time.Time `db:"created_at"`
}

type columnJSON struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

func encodeColumns(cols []domain.ColumnDef) ([]byte, error) {
	out := make([]columnJSON, 0, len(cols))
	for _, c := range cols {
		out = append(out, columnJSON(c))
	}
	return json.Marshal(out)
}

func decodeColumns(raw []byte) ([]domain.ColumnDef, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var in []columnJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode custom_columns: %w", err)
	}
	cols := make([]domain.ColumnDef, 0, len(in))
	for _, c := range in {
		cols = append(cols, domain.ColumnDef(c))
	}
	return cols, nil
}

func (r setRow) toDomain() (domain.WordSet, error) {
	cols, err := decodeColumns(r.CustomColumns)
	if err != nil {
		return domain.WordSet{}, err
	}
	return domain.WordSet{
		ID:            r.ID,
		OwnerID:       r.UserID,
		Title:         r.Title,
		CustomColumns: cols,
		CreatedAt:     r.CreatedAt,
	}, nil
}

// List returns the user's word sets in creation order. Totals are not filled.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.WordSet, error) {
	var rows []setRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+setColumns+` FROM word_sets WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "word_set", userID)
	}

	sets := make([]domain.WordSet, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, nil
}

// Get returns one word set of the user.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, id int64) (*domain.WordSet, error) {
	var row setRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+setColumns+` FROM word_sets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, postgres.MapError(err, "word_set", id)
	}
	s, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new word set.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title string, cols []domain.ColumnDef) (*domain.WordSet, error) {
	raw, err := encodeColumns(cols)
	if err != nil {
		return nil, err
	}

	var row setRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO word_sets (user_id, title, custom_columns)
		 VALUES ($1, $2, $3::jsonb)
		 RETURNING `+setColumns,
		userID, title, raw)
	if err != nil {
		return nil, postgres.MapError(err, "word_set", userID)
	}
	s, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update changes the title and/or the custom columns. A nil cols slice keeps
// the current columns.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, id int64, title *string, cols []domain.ColumnDef) (*domain.WordSet, error) {
	q := psql.Update("word_sets").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + setColumns)
	if title != nil {
		q = q.Set("title", *title)
	}
	if cols != nil {
		raw, err := encodeColumns(cols)
		if err != nil {
			return nil, err
		}
		q = q.Set("custom_columns", sq.Expr("?::jsonb", raw))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word_set: %w", err)
	}

	var row setRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word_set", id)
	}
	s, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a word set and, by cascade, its words.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM word_sets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "word_set", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "word_set", id)
	}
	return nil
}

// CountWords returns the number of words per set for the given set IDs.
// Sets with no words, or not owned by the user, are absent from the map.
func (r *Repo) CountWords(ctx context.Context, userID uuid.UUID, setIDs []int64) (map[int64]int, error) {
	query, args, err := psql.
		Select("w.word_set_id", "count(*) AS total").
		From("words w").
		Join("word_sets s ON s.id = w.word_set_id").
		Where(sq.Eq{"s.user_id": userID, "w.word_set_id": setIDs}).
		GroupBy("w.word_set_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count words: %w", err)
	}

	var rows []struct {
		WordSetID int64 `db:"word_set_id"`
		Total     int   `db:"total"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "word_set", userID)
	}

	out := make(map[int64]int, len(rows))
	for _, row := range rows {
		out[row.WordSetID] = row.Total
	}
	return out, nil
}
