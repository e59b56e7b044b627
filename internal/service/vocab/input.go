package vocab

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lexitable/internal/domain"
)

const (
	maxTitleLen   = 200
	maxColumns    = 30
	maxColumnName = 100
	maxFieldLen   = 2000
)

// CreateWordSetInput holds parameters for a new word set. When Columns is
// nil the Template's columns are used.
type CreateWordSetInput struct {
	Title    string
	Columns  []domain.ColumnDef
	Template domain.Template
}

// Validate validates the create input.
func (i CreateWordSetInput) Validate() error {
	var errs []domain.FieldError
	errs = appendTitleErrors(errs, i.Title)
	errs = appendColumnErrors(errs, i.Columns)
	if i.Template != "" && i.Template != domain.TemplateMinimal && i.Template != domain.TemplateBasic {
		errs = append(errs, domain.FieldError{Field: "template", Message: "unknown template"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWordSetInput is a partial word-set update. A nil Columns keeps the
// current columns; an empty non-nil slice removes all custom columns.
type UpdateWordSetInput struct {
	Title   *string
	Columns []domain.ColumnDef
}

// Validate validates the update input.
func (i UpdateWordSetInput) Validate() error {
	var errs []domain.FieldError
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	errs = appendColumnErrors(errs, i.Columns)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddWordInput holds a new word. Status defaults to NEW.
type AddWordInput struct {
	Original     string
	Translation  string
	Status       domain.WordStatus
	CustomFields map[string]string
}

// Validate validates the add input.
func (i AddWordInput) Validate() error {
	draft := domain.TempWord{Original: i.Original, Translation: i.Translation}
	var errs []domain.FieldError
	errs = append(errs, fieldErrors(draft.Validate())...)
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	errs = appendFieldLenErrors(errs, i.Original, i.Translation, i.CustomFields)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePatch(p domain.WordPatch) error {
	var errs []domain.FieldError
	if p.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "word", Message: "nothing to update"})
	}
	if p.Original != nil && strings.TrimSpace(*p.Original) == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyOriginal, Message: "cannot be empty"})
	}
	if p.Translation != nil && strings.TrimSpace(*p.Translation) == "" {
		errs = append(errs, domain.FieldError{Field: domain.KeyTranslation, Message: "cannot be empty"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	for k := range p.CustomFields {
		if k == "" || domain.IsReservedKey(k) {
			errs = append(errs, domain.FieldError{Field: "customFields", Message: "invalid key " + k})
		}
	}
	errs = appendFieldLenErrors(errs, deref(p.Original), deref(p.Translation), p.CustomFields)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = domain.NormalizeTitle(title)
	switch {
	case title == "":
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > maxTitleLen:
		return append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	return errs
}

func appendColumnErrors(errs []domain.FieldError, cols []domain.ColumnDef) []domain.FieldError {
	if len(cols) > maxColumns {
		errs = append(errs, domain.FieldError{Field: "customColumns", Message: "too many columns"})
	}
	for _, c := range cols {
		if utf8.RuneCountInString(c.Name) > maxColumnName {
			errs = append(errs, domain.FieldError{Field: "customColumns", Message: "column name too long"})
		}
	}
	return append(errs, fieldErrors(domain.ValidateColumns(cols))...)
}

func appendFieldLenErrors(errs []domain.FieldError, original, translation string, custom map[string]string) []domain.FieldError {
	if utf8.RuneCountInString(original) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: domain.KeyOriginal, Message: "too long"})
	}
	if utf8.RuneCountInString(translation) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: domain.KeyTranslation, Message: "too long"})
	}
	for k, v := range custom {
		if utf8.RuneCountInString(v) > maxFieldLen {
			errs = append(errs, domain.FieldError{Field: "customFields." + k, Message: "too long"})
		}
	}
	return errs
}

// normalizeColumns fills missing keys from names and forces ID == Key.
func normalizeColumns(cols []domain.ColumnDef) []domain.ColumnDef {
	if cols == nil {
		return nil
	}
	out := make([]domain.ColumnDef, 0, len(cols))
	for _, c := range cols {
		c.Name = strings.TrimSpace(c.Name)
		if c.Key == "" {
			c.Key = domain.DeriveColumnKey(c.Name)
		}
		c.ID = c.Key
		if c.Name == "" {
			c.Name = c.Key
		}
		out = append(out, c)
	}
	return out
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
