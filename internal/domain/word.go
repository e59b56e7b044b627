package domain

import (
	"maps"
	"strings"
	"time"
)

// Word is one vocabulary entry of a word set.
type Word struct {
	ID           int64
	WordSetID    int64
	Original     string
	Translation  string
	Status       WordStatus
	CreatedAt    time.Time
	CustomFields map[string]string
}

// Clone returns a deep copy of w.
func (w Word) Clone() Word {
	w.CustomFields = maps.Clone(w.CustomFields)
	return w
}

// Field returns the value stored under an exact key: a fixed field or a
// custom one. The bool is false when the word has no such field.
func (w Word) Field(key string) (string, bool) {
	switch key {
	case KeyOriginal:
		return w.Original, true
	case KeyTranslation:
		return w.Translation, true
	case KeyStatus:
		return w.Status.String(), true
	}
	v, ok := w.CustomFields[key]
	return v, ok
}

// WithField returns a copy of w with key set to value.
func (w Word) WithField(key, value string) Word {
	w = w.Clone()
	switch key {
	case KeyOriginal:
		w.Original = value
	case KeyTranslation:
		w.Translation = value
	default:
		if w.CustomFields == nil {
			w.CustomFields = make(map[string]string)
		}
		w.CustomFields[key] = value
	}
	return w
}

// TempWord is an unsaved draft row. It lives only on the client.
type TempWord struct {
	TempID       string
	Original     string
	Translation  string
	Status       WordStatus
	CustomFields map[string]string
}

// Validate rejects drafts with a blank original or translation.
func (t TempWord) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(t.Original) == "" {
		errs = append(errs, FieldError{Field: KeyOriginal, Message: "required"})
	}
	if strings.TrimSpace(t.Translation) == "" {
		errs = append(errs, FieldError{Field: KeyTranslation, Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// WordPatch is a partial update of a word. Nil fields are left unchanged.
type WordPatch struct {
	Original     *string
	Translation  *string
	Status       *WordStatus
	CustomFields map[string]string
}

// IsEmpty reports whether the patch changes nothing.
func (p WordPatch) IsEmpty() bool {
	return p.Original == nil && p.Translation == nil && p.Status == nil && len(p.CustomFields) == 0
}

// Apply returns w with the patch applied. Custom fields are merged.
func (p WordPatch) Apply(w Word) Word {
	w = w.Clone()
	if p.Original != nil {
		w.Original = *p.Original
	}
	if p.Translation != nil {
		w.Translation = *p.Translation
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if len(p.CustomFields) > 0 {
		if w.CustomFields == nil {
			w.CustomFields = make(map[string]string, len(p.CustomFields))
		}
		maps.Copy(w.CustomFields, p.CustomFields)
	}
	return w
}

// PatchForField builds the patch that sets a single column.
func PatchForField(key, value string) WordPatch {
	switch key {
	case KeyOriginal:
		return WordPatch{Original: &value}
	case KeyTranslation:
		return WordPatch{Translation: &value}
	default:
		return WordPatch{CustomFields: map[string]string{key: value}}
	}
}
