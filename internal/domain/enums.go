package domain

import (
	"fmt"
	"strings"
)

// WordStatus is the learning status of a vocabulary word.
type WordStatus string

const (
	WordStatusNew      WordStatus = "NEW"
	WordStatusLearning WordStatus = "LEARNING"
	WordStatusLearned  WordStatus = "LEARNED"
)

// AllWordStatuses lists statuses in display order.
var AllWordStatuses = []WordStatus{WordStatusNew, WordStatusLearning, WordStatusLearned}

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusNew, WordStatusLearning, WordStatusLearned:
		return true
	}
	return false
}

// ParseWordStatus parses a status case-insensitively.
func ParseWordStatus(raw string) (WordStatus, error) {
	s := WordStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown word status %q: %w", raw, ErrValidation)
	}
	return s, nil
}

// AnswerStatus returns the status a word moves to after a training answer.
func AnswerStatus(known bool) WordStatus {
	if known {
		return WordStatusLearned
	}
	return WordStatusLearning
}
