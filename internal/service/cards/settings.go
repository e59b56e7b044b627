package cards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexitable/internal/domain"
	"github.com/heartmarshall/lexitable/pkg/ctxutil"
)

// GetSettings returns the user's settings with the columns offered by the
// selected tables. Users without stored settings get the defaults.
func (s *Service) GetSettings(ctx context.Context) (*domain.CardSettingsView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cards.GetSettings: %w", err)
	}

	sets, err := s.sets.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cards.GetSettings list sets: %w", err)
	}

	return view(current, sets), nil
}

// UpdateSettings applies a partial update and stores the result. Changing
// the table selection clears the hint; a hint the selected tables do not
// offer is dropped.
func (s *Service) UpdateSettings(ctx context.Context, patch domain.CardSettingsPatch) (*domain.CardSettingsView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sets, err := s.sets.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cards.UpdateSettings list sets: %w", err)
	}
	if err := validatePatch(patch, sets); err != nil {
		return nil, err
	}

	current, err := s.load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cards.UpdateSettings: %w", err)
	}

	next := patch.Apply(*current)
	next = next.Normalize(domain.UserColumns(sets, next.Tables))

	saved, err := s.settings.Upsert(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("cards.UpdateSettings save: %w", err)
	}

	s.log.DebugContext(ctx, "card settings saved", slog.String("user_id", userID.String()))

	return view(saved, sets), nil
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (*domain.CardSettings, error) {
	current, err := s.settings.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		d := domain.DefaultCardSettings(userID)
		return &d, nil
	}
	return current, err
}

func view(settings *domain.CardSettings, sets []domain.WordSet) *domain.CardSettingsView {
	cols := domain.UserColumns(sets, settings.Tables)
	return &domain.CardSettingsView{
		Settings:    settings.Normalize(cols),
		UserColumns: cols,
	}
}

func validatePatch(p domain.CardSettingsPatch, sets []domain.WordSet) error {
	var errs []domain.FieldError

	if p.FrontKey != nil && strings.TrimSpace(*p.FrontKey) == "" {
		errs = append(errs, domain.FieldError{Field: "frontKey", Message: "cannot be empty"})
	}
	if p.BackKey != nil && strings.TrimSpace(*p.BackKey) == "" {
		errs = append(errs, domain.FieldError{Field: "backKey", Message: "cannot be empty"})
	}
	if p.Statuses != nil {
		for _, st := range p.Statuses.Members() {
			if !st.IsValid() {
				errs = append(errs, domain.FieldError{Field: "selectedStatuses", Message: "invalid status " + st.String()})
			}
		}
	}
	if p.Tables != nil {
		owned := make(map[int64]struct{}, len(sets))
		for _, set := range sets {
			owned[set.ID] = struct{}{}
		}
		for _, id := range p.Tables.Members() {
			if _, ok := owned[id]; !ok {
				errs = append(errs, domain.FieldError{Field: "selectedTables", Message: "unknown table " + strconv.FormatInt(id, 10)})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
