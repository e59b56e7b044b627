package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lexitable/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:    uuid.New(),
		Email: "testuser-" + suffix + "@example.com",
		Name:  "Test User " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3) RETURNING created_at, updated_at`,
		user.ID, user.Email, user.Name,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWordSet inserts a word set with the "example" custom column.
func SeedWordSet(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.WordSet {
	t.Helper()

	set := domain.WordSet{
		OwnerID:       userID,
		Title:         title,
		CustomColumns: domain.TemplateBasic.Columns(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO word_sets (user_id, title, custom_columns)
		 VALUES ($1, $2, '[{"id":"example","key":"example","name":"Пример"}]'::jsonb)
		 RETURNING id, created_at`,
		userID, title,
	).Scan(&set.ID, &set.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWordSet insert word_set: %v", err)
	}

	return set
}

// SeedWord inserts a word into a set.
func SeedWord(t *testing.T, pool *pgxpool.Pool, setID int64, original, translation string, status domain.WordStatus) domain.Word {
	t.Helper()

	w := domain.Word{
		WordSetID:   setID,
		Original:    original,
		Translation: translation,
		Status:      status,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (word_set_id, original, translation, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		setID, original, translation, string(status),
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return w
}
