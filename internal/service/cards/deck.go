package cards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// CountWords returns how many words a deck with the filter would contain.
func (s *Service) CountWords(ctx context.Context, filter domain.CardFilter) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.words.CountCards(ctx, userID, filter)
	if err != nil {
		return 0, fmt.Errorf("cards.CountWords: %w", err)
	}
	return n, nil
}

// TrainingCards returns the deck for a session in storage order; clients
// shuffle it. The deck is capped by config.
func (s *Service) TrainingCards(ctx context.Context, params domain.TrainParams) ([]domain.TrainingCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.words.ListCards(ctx, userID, params.Filter(), s.cfg.MaxTrainCards)
	if err != nil {
		return nil, fmt.Errorf("cards.TrainingCards: %w", err)
	}

	cards := make([]domain.TrainingCard, len(words))
	for i, w := range words {
		cards[i] = domain.TrainingCard{Word: w}
	}
	return cards, nil
}

// SubmitAnswer records a training answer: known words become LEARNED, the
// rest LEARNING.
func (s *Service) SubmitAnswer(ctx context.Context, wordID int64, known bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	status := domain.AnswerStatus(known)
	if err := s.words.SetStatus(ctx, userID, wordID, status); err != nil {
		return fmt.Errorf("cards.SubmitAnswer: %w", err)
	}

	s.log.DebugContext(ctx, "answer recorded",
		slog.Int64("word_id", wordID),
		slog.String("status", status.String()))
	return nil
}
