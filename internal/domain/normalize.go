package domain

import (
	"strings"
	"unicode"
)

// DeriveColumnKey turns a user-entered column name into its storage key:
// the name is lowercased and every run of whitespace becomes a single "_".
func DeriveColumnKey(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	inSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTitle trims a word-set title and collapses inner whitespace.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
