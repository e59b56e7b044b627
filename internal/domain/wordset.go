package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Fixed column keys present on every word set. They are never stored in
// CustomColumns and cannot be removed.
const (
	KeyOriginal    = "original"
	KeyTranslation = "translation"
	KeyStatus      = "status"
)

// PageSize is the number of words fetched per page of a word set.
const PageSize = 50

// MaxPageSize caps the limit a client may request.
const MaxPageSize = 200

// ColumnDef is an extra column attached to every word of a set.
// ID always equals Key.
type ColumnDef struct {
	ID   string
	Key  string
	Name string
}

// NewColumnDef builds a column from a display name.
func NewColumnDef(name string) ColumnDef {
	key := DeriveColumnKey(name)
	return ColumnDef{ID: key, Key: key, Name: name}
}

// ColumnRef names a column available for flashcards.
type ColumnRef struct {
	Key  string
	Name string
}

// DefaultColumns are the columns available when a user has no custom ones.
func DefaultColumns() []ColumnRef {
	return []ColumnRef{
		{Key: KeyOriginal, Name: "Слово"},
		{Key: KeyTranslation, Name: "Перевод"},
	}
}

// IsFixedKey reports whether key is one of the built-in word fields.
func IsFixedKey(key string) bool {
	return key == KeyOriginal || key == KeyTranslation
}

// IsReservedKey reports whether key may not name a custom column: the fixed
// fields and status, which field lookup resolves before custom keys.
func IsReservedKey(key string) bool {
	return IsFixedKey(key) || key == KeyStatus
}

// Template is a named starting set of columns for a new word set.
type Template string

const (
	TemplateMinimal Template = "minimal"
	TemplateBasic   Template = "basic"
)

// Columns returns the custom columns a template contributes.
// The fixed original/translation columns are implicit.
func (t Template) Columns() []ColumnDef {
	switch t {
	case TemplateBasic:
		return []ColumnDef{{ID: "example", Key: "example", Name: "Пример"}}
	default:
		return nil
	}
}

// WordSet is a user-owned table of words sharing one column schema.
type WordSet struct {
	ID            int64
	OwnerID       uuid.UUID
	Title         string
	CustomColumns []ColumnDef
	Total         int
	CreatedAt     time.Time
}

// HasColumn reports whether key is taken by a reserved or custom column.
func (s WordSet) HasColumn(key string) bool {
	if IsReservedKey(key) {
		return true
	}
	return slices.ContainsFunc(s.CustomColumns, func(c ColumnDef) bool { return c.Key == key })
}

// ValidateColumns checks that custom column keys are unique, non-empty and
// not reserved.
func ValidateColumns(cols []ColumnDef) error {
	var errs []FieldError
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		switch {
		case c.Key == "":
			errs = append(errs, FieldError{Field: "customColumns", Message: "column key is empty"})
		case IsReservedKey(c.Key):
			errs = append(errs, FieldError{Field: "customColumns", Message: "column " + c.Key + " is reserved"})
		default:
			if _, dup := seen[c.Key]; dup {
				errs = append(errs, FieldError{Field: "customColumns", Message: "duplicate column " + c.Key})
			}
			seen[c.Key] = struct{}{}
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// WordSetPage is one page of a word set listing.
type WordSetPage struct {
	ID            int64
	Title         string
	CustomColumns []ColumnDef
	Words         []Word
	HasMore       bool
	Total         int
}

// WordFilter narrows a word listing.
type WordFilter struct {
	Search string
	Status *WordStatus
	Offset int
	Limit  int
}
