package vocab

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/config"
	"github.com/heartmarshall/lexitable/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordSetRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.WordSet, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (*domain.WordSet, error)
	Create(ctx context.Context, userID uuid.UUID, title string, cols []domain.ColumnDef) (*domain.WordSet, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, title *string, cols []domain.ColumnDef) (*domain.WordSet, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type wordRepo interface {
	ListPage(ctx context.Context, userID uuid.UUID, setID int64, f domain.WordFilter) ([]domain.Word, int, error)
	Create(ctx context.Context, userID uuid.UUID, setID int64, w domain.Word) (*domain.Word, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, p domain.WordPatch) (*domain.Word, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word-set and word operations of the signed-in user.
type Service struct {
	log   *slog.Logger
	sets  wordSetRepo
	words wordRepo
	cfg   config.VocabConfig
}

// NewService creates a new vocab service.
func NewService(logger *slog.Logger, sets wordSetRepo, words wordRepo, cfg config.VocabConfig) *Service {
	return &Service{
		log:   logger.With("service", "vocab"),
		sets:  sets,
		words: words,
		cfg:   cfg,
	}
}
