package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// CardSettings is a user's flashcard configuration.
type CardSettings struct {
	UserID    uuid.UUID
	FrontKey  string
	BackKey   string
	HintKey   *string
	Statuses  Selection[WordStatus]
	Tables    Selection[int64]
	UpdatedAt time.Time
}

// DefaultCardSettings shows the original on the front and the translation on
// the back, with no hint and no filters.
func DefaultCardSettings(userID uuid.UUID) CardSettings {
	return CardSettings{
		UserID:   userID,
		FrontKey: KeyOriginal,
		BackKey:  KeyTranslation,
		Statuses: All[WordStatus](),
		Tables:   All[int64](),
	}
}

// Normalize fills empty front/back keys with the defaults and drops a hint
// that does not name one of the available columns.
func (s CardSettings) Normalize(columns []ColumnRef) CardSettings {
	if len(columns) == 0 {
		columns = DefaultColumns()
	}
	if s.FrontKey == "" {
		s.FrontKey = KeyOriginal
	}
	if s.BackKey == "" {
		s.BackKey = KeyTranslation
	}
	if s.HintKey != nil {
		hint := *s.HintKey
		if hint == "" || !slices.ContainsFunc(columns, func(c ColumnRef) bool { return c.Key == hint }) {
			s.HintKey = nil
		}
	}
	return s
}

// WithTables switches the table selection. The set of available columns may
// change with it, so the hint is always cleared.
func (s CardSettings) WithTables(tables Selection[int64]) CardSettings {
	s.Tables = tables
	s.HintKey = nil
	return s
}

// TrainParams derives the training-session parameters from the settings.
func (s CardSettings) TrainParams() TrainParams {
	p := TrainParams{
		Front:    s.FrontKey,
		Back:     s.BackKey,
		Statuses: s.Statuses,
		Tables:   s.Tables,
	}
	if s.HintKey != nil {
		h := *s.HintKey
		p.Hint = &h
	}
	return p
}

// CardSettingsPatch is a partial settings update. Nil fields are kept;
// ClearHint resets the hint regardless of HintKey.
type CardSettingsPatch struct {
	FrontKey  *string
	BackKey   *string
	HintKey   *string
	ClearHint bool
	Statuses  *Selection[WordStatus]
	Tables    *Selection[int64]
}

// Apply returns s with the patch applied. A table change clears the hint.
func (p CardSettingsPatch) Apply(s CardSettings) CardSettings {
	if p.FrontKey != nil {
		s.FrontKey = *p.FrontKey
	}
	if p.BackKey != nil {
		s.BackKey = *p.BackKey
	}
	if p.Statuses != nil {
		s.Statuses = *p.Statuses
	}
	if p.Tables != nil && !p.Tables.Equal(s.Tables) {
		s = s.WithTables(*p.Tables)
	}
	switch {
	case p.ClearHint:
		s.HintKey = nil
	case p.HintKey != nil:
		h := *p.HintKey
		s.HintKey = &h
	}
	return s
}

// CardSettingsView is the settings together with the columns offered by the
// currently selected tables.
type CardSettingsView struct {
	Settings    CardSettings
	UserColumns []ColumnRef
}

// AvailableColumns returns UserColumns, or the defaults when there are none.
func (v CardSettingsView) AvailableColumns() []ColumnRef {
	if len(v.UserColumns) == 0 {
		return DefaultColumns()
	}
	return v.UserColumns
}

// UserColumns merges the fixed columns with the custom columns of the sets
// passing the table filter. The first set to define a key names it.
func UserColumns(sets []WordSet, tables Selection[int64]) []ColumnRef {
	cols := DefaultColumns()
	seen := map[string]struct{}{KeyOriginal: {}, KeyTranslation: {}}
	for _, set := range sets {
		if !tables.Contains(set.ID) {
			continue
		}
		for _, c := range set.CustomColumns {
			if _, ok := seen[c.Key]; ok {
				continue
			}
			seen[c.Key] = struct{}{}
			cols = append(cols, ColumnRef{Key: c.Key, Name: c.Name})
		}
	}
	return cols
}

// TrainParams are the parameters of one training session. They travel in
// the session location so a session can be reopened as is.
type TrainParams struct {
	Front    string
	Back     string
	Hint     *string
	Statuses Selection[WordStatus]
	Tables   Selection[int64]
}

// CardFilter is the word filter shared by counting and card fetching.
type CardFilter struct {
	Statuses Selection[WordStatus]
	Tables   Selection[int64]
}

// Filter extracts the word filter from the parameters.
func (p TrainParams) Filter() CardFilter {
	return CardFilter{Statuses: p.Statuses, Tables: p.Tables}
}

// TrainingCard is a read-only projection of a word used during a session.
type TrainingCard struct {
	Word
}
