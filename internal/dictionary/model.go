// Package dictionary implements the two word sources behind the lookup
// fallback chain: the bundled reference dictionary and the user-extensible
// custom dictionary store.
package dictionary

import "errors"

// Validation errors returned by CustomStore.Append.
var (
	ErrMissingWord        = errors.New("word is required")
	ErrMissingTranslation = errors.New("translation is required")
)

// Entry is one reference dictionary record.
type Entry struct {
	Word         string
	PartOfSpeech string
	Meaning      string
}

// CustomEntry is one record of the user-saved custom dictionary.
type CustomEntry struct {
	Word         string
	Translation  string
	PartOfSpeech string
	Example      string
}
