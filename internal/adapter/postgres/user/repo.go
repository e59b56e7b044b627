// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/domain"
)

const userColumns = `id, email, name, avatar_url, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address. Emails are compared as stored;
// callers normalize them first.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return row.toDomain(), nil
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO users (id, email, name, avatar_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		u.ID, u.Email, u.Name, u.AvatarURL)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// Update changes the profile fields that are non-nil.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, avatarURL *string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE users
		 SET name = COALESCE($2, name),
		     avatar_url = COALESCE($3, avatar_url),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, name, avatarURL)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// UpdateEmail changes the sign-in email. A taken email yields ErrAlreadyExists.
func (r *Repo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`UPDATE users SET email = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, email)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}
