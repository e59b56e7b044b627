package seeder

import "github.com/heartmarshall/lexitable/internal/domain"

type sampleWord struct {
	original    string
	translation string
	example     string
	status      domain.WordStatus
}

// sampleWords is the starter vocabulary of the demo account. It uses the
// basic template, so every word carries an "example" field.
var sampleWords = []sampleWord{
	{"apple", "яблоко", "An apple a day", domain.WordStatusNew},
	{"book", "книга", "Read a book", domain.WordStatusLearning},
	{"river", "река", "Across the river", domain.WordStatusLearned},
	{"mountain", "гора", "High mountain", domain.WordStatusLearning},
	{"sun", "солнце", "Bright sun", domain.WordStatusNew},
}
