// Package transfer exports word sets to spreadsheets and imports them back.
package transfer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/config"
	"github.com/heartmarshall/lexitable/internal/domain"
)

type wordSetRepo interface {
	Get(ctx context.Context, userID uuid.UUID, id int64) (*domain.WordSet, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, title *string, cols []domain.ColumnDef) (*domain.WordSet, error)
}

type wordRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID, setID int64, limit int) ([]domain.Word, error)
	CreateBatch(ctx context.Context, setID int64, words []domain.Word) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements word-set export and import.
type Service struct {
	log   *slog.Logger
	sets  wordSetRepo
	words wordRepo
	tx    txManager
	cfg   config.VocabConfig
}

// NewService creates a new transfer service.
func NewService(logger *slog.Logger, sets wordSetRepo, words wordRepo, tx txManager, cfg config.VocabConfig) *Service {
	return &Service{
		log:   logger.With("service", "transfer"),
		sets:  sets,
		words: words,
		tx:    tx,
		cfg:   cfg,
	}
}
