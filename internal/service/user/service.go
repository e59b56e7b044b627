package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error)
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) (*domain.User, error)
}

type authMethodRepo interface {
	GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
}

type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements profile and password operations of the signed-in user.
type Service struct {
	log         *slog.Logger
	users       userRepo
	authMethods authMethodRepo
	tokens      tokenRepo
	tx          txManager
	hasher      passwordHasher
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	authMethods authMethodRepo,
	tokens tokenRepo,
	tx txManager,
	hasher passwordHasher,
) *Service {
	return &Service{
		log:         logger.With("service", "user"),
		users:       users,
		authMethods: authMethods,
		tokens:      tokens,
		tx:          tx,
		hasher:      hasher,
	}
}
