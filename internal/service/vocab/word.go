package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// AddWord appends a word to a set owned by the user.
func (s *Service) AddWord(ctx context.Context, setID int64, input AddWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.WordStatusNew
	}

	word, err := s.words.Create(ctx, userID, setID, domain.Word{
		Original:     strings.TrimSpace(input.Original),
		Translation:  strings.TrimSpace(input.Translation),
		Status:       status,
		CustomFields: input.CustomFields,
	})
	if err != nil {
		return nil, fmt.Errorf("vocab.AddWord: %w", err)
	}
	return word, nil
}

// UpdateWord applies a partial update; custom fields are merged.
func (s *Service) UpdateWord(ctx context.Context, id int64, patch domain.WordPatch) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	word, err := s.words.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, fmt.Errorf("vocab.UpdateWord: %w", err)
	}
	return word, nil
}

// DeleteWord removes a word.
func (s *Service) DeleteWord(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("vocab.DeleteWord: %w", err)
	}
	return nil
}
