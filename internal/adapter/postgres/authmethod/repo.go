// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/adapter/postgres"
	"github.com/heartmarshall/lexitable/internal/domain"
)

const methodColumns = `id, user_id, method, provider_id, password_hash, created_at, updated_at`

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new auth method repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type methodRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Method       string    `db:"method"`
	ProviderID   *string   `db:"provider_id"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r methodRow) toDomain() *domain.AuthMethod {
	return &domain.AuthMethod{
		ID:           r.ID,
		UserID:       r.UserID,
		Method:       domain.AuthMethodType(r.Method),
		ProviderID:   r.ProviderID,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByOAuth returns the auth method for the given OAuth provider + provider ID.
func (r *Repo) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	var row methodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+methodColumns+` FROM auth_methods WHERE method = $1 AND provider_id = $2`,
		string(method), providerID)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", providerID)
	}
	return row.toDomain(), nil
}

// GetByUserAndMethod returns the auth method of a user with the given type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	var row methodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+methodColumns+` FROM auth_methods WHERE user_id = $1 AND method = $2`,
		userID, string(method))
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}
	return row.toDomain(), nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	var row methodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO auth_methods (user_id, method, provider_id, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+methodColumns,
		am.UserID, string(am.Method), am.ProviderID, am.PasswordHash)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", am.UserID)
	}
	return row.toDomain(), nil
}

// UpdatePasswordHash replaces the password hash of a user's password method.
func (r *Repo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE auth_methods SET password_hash = $2, updated_at = now()
		 WHERE user_id = $1 AND method = 'password'`,
		userID, hash)
	if err != nil {
		return postgres.MapError(err, "auth_method", userID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "auth_method", userID)
	}
	return nil
}
