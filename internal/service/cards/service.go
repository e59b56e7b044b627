// Package cards implements flashcard settings, deck counting and training
// answers.
package cards

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/config"
	"github.com/heartmarshall/lexitable/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.CardSettings, error)
	Upsert(ctx context.Context, s domain.CardSettings) (*domain.CardSettings, error)
}

type wordSetRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.WordSet, error)
}

type wordRepo interface {
	CountCards(ctx context.Context, userID uuid.UUID, f domain.CardFilter) (int, error)
	ListCards(ctx context.Context, userID uuid.UUID, f domain.CardFilter, limit int) ([]domain.Word, error)
	SetStatus(ctx context.Context, userID uuid.UUID, id int64, status domain.WordStatus) error
}

// Service implements card settings and training operations.
type Service struct {
	log      *slog.Logger
	settings settingsRepo
	sets     wordSetRepo
	words    wordRepo
	cfg      config.VocabConfig
}

// NewService creates a new cards service.
func NewService(logger *slog.Logger, settings settingsRepo, sets wordSetRepo, words wordRepo, cfg config.VocabConfig) *Service {
	return &Service{
		log:      logger.With("service", "cards"),
		settings: settings,
		sets:     sets,
		words:    words,
		cfg:      cfg,
	}
}
