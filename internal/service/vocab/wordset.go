package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// ListWordSets returns the user's word sets in creation order. Totals are
// left at zero; the transport layer batches them through a data loader.
func (s *Service) ListWordSets(ctx context.Context) ([]domain.WordSet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sets, err := s.sets.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vocab.ListWordSets: %w", err)
	}
	return sets, nil
}

// CreateWordSet creates a word set from explicit columns or a template.
func (s *Service) CreateWordSet(ctx context.Context, input CreateWordSetInput) (*domain.WordSet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Columns = normalizeColumns(input.Columns)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cols := input.Columns
	if cols == nil {
		cols = input.Template.Columns()
	}

	set, err := s.sets.Create(ctx, userID, domain.NormalizeTitle(input.Title), cols)
	if err != nil {
		return nil, fmt.Errorf("vocab.CreateWordSet: %w", err)
	}

	s.log.InfoContext(ctx, "word set created",
		slog.String("user_id", userID.String()),
		slog.Int64("word_set_id", set.ID))

	return set, nil
}

// UpdateWordSet renames a set and/or replaces its custom columns. Values of
// removed columns stay in the words' custom fields.
func (s *Service) UpdateWordSet(ctx context.Context, id int64, input UpdateWordSetInput) (*domain.WordSet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Columns = normalizeColumns(input.Columns)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var title *string
	if input.Title != nil {
		t := domain.NormalizeTitle(*input.Title)
		title = &t
	}

	set, err := s.sets.Update(ctx, userID, id, title, input.Columns)
	if err != nil {
		return nil, fmt.Errorf("vocab.UpdateWordSet: %w", err)
	}
	return set, nil
}

// DeleteWordSet removes a set together with its words.
func (s *Service) DeleteWordSet(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sets.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("vocab.DeleteWordSet: %w", err)
	}

	s.log.InfoContext(ctx, "word set deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("word_set_id", id))
	return nil
}

// GetWordSetPage returns the set's metadata with one page of words matching
// the filter. Limit defaults to domain.PageSize and is capped by config.
func (s *Service) GetWordSetPage(ctx context.Context, id int64, filter domain.WordFilter) (*domain.WordSetPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = domain.PageSize
	case filter.Limit > s.cfg.MaxPageSize:
		filter.Limit = s.cfg.MaxPageSize
	}

	set, err := s.sets.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("vocab.GetWordSetPage: %w", err)
	}

	words, total, err := s.words.ListPage(ctx, userID, id, filter)
	if err != nil {
		return nil, fmt.Errorf("vocab.GetWordSetPage list: %w", err)
	}
	if words == nil {
		words = []domain.Word{}
	}

	return &domain.WordSetPage{
		ID:            set.ID,
		Title:         set.Title,
		CustomColumns: set.CustomColumns,
		Words:         words,
		HasMore:       filter.Offset+len(words) < total,
		Total:         total,
	}, nil
}
