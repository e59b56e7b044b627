package domain

import (
	"slices"
	"strings"
)

// MissingValue is shown in place of a field a card does not have.
const MissingValue = "—"

var fixedFields = []string{KeyOriginal, KeyTranslation, KeyStatus}

// FieldRef is a resolved field location on a word: a fixed field or a key in
// the custom-fields map, spelled exactly as stored.
type FieldRef struct {
	Key    string
	Custom bool
}

// ResolveKey finds the field a requested key refers to. Fixed fields are
// matched case-insensitively first, then custom keys the same way. Custom
// keys are tried in sorted order so the result is stable.
func ResolveKey(w Word, requested string) (FieldRef, bool) {
	if requested == "" {
		return FieldRef{}, false
	}
	for _, k := range fixedFields {
		if strings.EqualFold(k, requested) {
			return FieldRef{Key: k}, true
		}
	}
	if _, ok := w.CustomFields[requested]; ok {
		return FieldRef{Key: requested, Custom: true}, true
	}
	keys := make([]string, 0, len(w.CustomFields))
	for k := range w.CustomFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if strings.EqualFold(k, requested) {
			return FieldRef{Key: k, Custom: true}, true
		}
	}
	return FieldRef{}, false
}

// FieldValue reads a resolved field from w.
func FieldValue(w Word, ref FieldRef) (string, bool) {
	if ref.Key == "" {
		return "", false
	}
	if ref.Custom {
		v, ok := w.CustomFields[ref.Key]
		return v, ok
	}
	return w.Field(ref.Key)
}

// ResolveField resolves requested against w and returns its value.
func ResolveField(w Word, requested string) (string, bool) {
	ref, ok := ResolveKey(w, requested)
	if !ok {
		return "", false
	}
	return FieldValue(w, ref)
}

// DisplayValue is FieldValue with MissingValue for absent or empty fields.
func DisplayValue(w Word, ref FieldRef) string {
	v, ok := FieldValue(w, ref)
	if !ok || v == "" {
		return MissingValue
	}
	return v
}
