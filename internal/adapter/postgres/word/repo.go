// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var wordColumns = []string{
	"w.id", "w.word_set_id", "w.original", "w.translation", "w.status", "w.custom_fields", "w.created_at",
}

const returningColumns = `RETURNING id, word_set_id, original, translation, status, custom_fields, created_at`

// Repo provides words persistence backed by PostgreSQL. Ownership is checked
// through the parent word set.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type wordRow struct {
	ID           int64     `db:"id"`
	WordSetID    int64     `db:"word_set_id"`
	Original     string    `db:"original"`
	Translation  string    `db:"translation"`
	Status       string    `db:"status"`
	CustomFields []byte    `db:"custom_fields"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r wordRow) toDomain() (domain.Word, error) {
	w := domain.Word{
		ID:          r.ID,
		WordSetID:   r.WordSetID,
		Original:    r.Original,
		Translation: r.Translation,
		Status:      domain.WordStatus(r.Status),
		CreatedAt:   r.CreatedAt,
	}
	if len(r.CustomFields) > 0 {
		if err := json.Unmarshal(r.CustomFields, &w.CustomFields); err != nil {
			return domain.Word{}, fmt.Errorf("decode custom_fields of word %d: %w", r.ID, err)
		}
	}
	return w, nil
}

func toDomainList(rows []wordRow) ([]domain.Word, error) {
	words := make([]domain.Word, 0, len(rows))
	for _, row := range rows {
		w, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

func encodeFields(fields map[string]string) ([]byte, error) {
	if fields == nil {
		fields = map[string]string{}
	}
	return json.Marshal(fields)
}

// escapeLike escapes LIKE wildcards so the search text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func ownedBy(userID uuid.UUID) sq.Sqlizer {
	return sq.Expr("w.word_set_id IN (SELECT id FROM word_sets WHERE user_id = ?)", userID)
}

func applyWordFilter(q sq.SelectBuilder, f domain.WordFilter) sq.SelectBuilder {
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		q = q.Where(sq.Or{sq.ILike{"w.original": pattern}, sq.ILike{"w.translation": pattern}})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"w.status": string(*f.Status)})
	}
	return q
}

func applyCardFilter(q sq.SelectBuilder, f domain.CardFilter) sq.SelectBuilder {
	if !f.Statuses.IsAll() {
		statuses := make([]string, 0, len(f.Statuses.Members()))
		for _, s := range f.Statuses.Members() {
			statuses = append(statuses, string(s))
		}
		q = q.Where(sq.Eq{"w.status": statuses})
	}
	if !f.Tables.IsAll() {
		q = q.Where(sq.Eq{"w.word_set_id": f.Tables.Members()})
	}
	return q
}

// ListPage returns one page of a set's words in insertion order together
// with the number of words matching the filter.
func (r *Repo) ListPage(ctx context.Context, userID uuid.UUID, setID int64, f domain.WordFilter) ([]domain.Word, int, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	base := applyWordFilter(
		psql.Select().From("words w").Where(sq.Eq{"w.word_set_id": setID}).Where(ownedBy(userID)),
		f,
	)

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count words: %w", err)
	}
	var total int
	if err := db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "word_set", setID)
	}

	pageSQL, pageArgs, err := base.Columns(wordColumns...).
		OrderBy("w.id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list words: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, db, &rows, pageSQL, pageArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "word_set", setID)
	}
	words, err := toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return words, total, nil
}

// Get returns one word of the user.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, id int64) (*domain.Word, error) {
	query, args, err := psql.Select(wordColumns...).
		From("words w").
		Where(sq.Eq{"w.id": id}).
		Where(ownedBy(userID)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get word: %w", err)
	}

	var row wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	w, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create inserts a word into a set owned by the user. A missing or foreign
// set yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, setID int64, w domain.Word) (*domain.Word, error) {
	fields, err := encodeFields(w.CustomFields)
	if err != nil {
		return nil, err
	}
	status := w.Status
	if status == "" {
		status = domain.WordStatusNew
	}

	var row wordRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO words (word_set_id, original, translation, status, custom_fields)
		 SELECT s.id, $3, $4, $5, $6::jsonb
		 FROM word_sets s
		 WHERE s.id = $1 AND s.user_id = $2
		 `+returningColumns,
		setID, userID, w.Original, w.Translation, string(status), fields)
	if err != nil {
		return nil, postgres.MapError(err, "word_set", setID)
	}
	created, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update. Custom fields are merged into the stored ones.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, id int64, p domain.WordPatch) (*domain.Word, error) {
	q := psql.Update("words w").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"w.id": id}).
		Where(ownedBy(userID)).
		Suffix(returningColumns)
	if p.Original != nil {
		q = q.Set("original", *p.Original)
	}
	if p.Translation != nil {
		q = q.Set("translation", *p.Translation)
	}
	if p.Status != nil {
		q = q.Set("status", string(*p.Status))
	}
	if len(p.CustomFields) > 0 {
		fields, err := encodeFields(p.CustomFields)
		if err != nil {
			return nil, err
		}
		q = q.Set("custom_fields", sq.Expr("w.custom_fields || ?::jsonb", fields))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update word: %w", err)
	}

	var row wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}
	w, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// SetStatus records a training answer on a word.
func (r *Repo) SetStatus(ctx context.Context, userID uuid.UUID, id int64, status domain.WordStatus) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE words w SET status = $3, updated_at = now()
		 WHERE w.id = $1 AND w.word_set_id IN (SELECT id FROM word_sets WHERE user_id = $2)`,
		id, userID, string(status))
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "word", id)
	}
	return nil
}

// Delete removes a word of the user.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM words w
		 WHERE w.id = $1 AND w.word_set_id IN (SELECT id FROM word_sets WHERE user_id = $2)`,
		id, userID)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "word", id)
	}
	return nil
}

// CountCards returns how many of the user's words pass the card filter.
func (r *Repo) CountCards(ctx context.Context, userID uuid.UUID, f domain.CardFilter) (int, error) {
	query, args, err := applyCardFilter(
		psql.Select("count(*)").From("words w").Where(ownedBy(userID)), f,
	).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count cards: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "words", userID)
	}
	return n, nil
}

// ListCards returns up to limit of the user's words passing the card filter.
func (r *Repo) ListCards(ctx context.Context, userID uuid.UUID, f domain.CardFilter, limit int) ([]domain.Word, error) {
	query, args, err := applyCardFilter(
		psql.Select(wordColumns...).From("words w").Where(ownedBy(userID)), f,
	).OrderBy("w.id").Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "words", userID)
	}
	return toDomainList(rows)
}

// ListAll returns up to limit words of a set in insertion order.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID, setID int64, limit int) ([]domain.Word, error) {
	query, args, err := psql.Select(wordColumns...).
		From("words w").
		Where(sq.Eq{"w.word_set_id": setID}).
		Where(ownedBy(userID)).
		OrderBy("w.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "word_set", setID)
	}
	return toDomainList(rows)
}

// CreateBatch inserts words into a set in one round trip. The caller checks
// set ownership first.
func (r *Repo) CreateBatch(ctx context.Context, setID int64, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		fields, err := encodeFields(w.CustomFields)
		if err != nil {
			return 0, err
		}
		status := w.Status
		if status == "" {
			status = domain.WordStatusNew
		}
		batch.Queue(
			`INSERT INTO words (word_set_id, original, translation, status, custom_fields)
			 VALUES ($1, $2, $3, $4, $5::jsonb)`,
			setID, w.Original, w.Translation, string(status), fields,
		)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for i := range words {
		if _, err := br.Exec(); err != nil {
			return i, postgres.MapError(err, "word_set", setID)
		}
	}
	return len(words), nil
}
