// Package bible loads and serves the bundled scripture texts. Each language
// ships as one JSON file mapping book code to chapters of numbered verses;
// the canonical book order comes from a YAML index.
package bible

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Language selects which translation a chapter is read from.
type Language string

const (
	LanguageTongan  Language = "tongan"
	LanguageEnglish Language = "english"
)

// Verse is one numbered verse of a chapter.
type Verse struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// Chapter is an ordered list of verses.
type Chapter []Verse

// Book is one scripture book in a single language.
type Book struct {
	Name     string             `json:"name"`
	Chapters map[string]Chapter `json:"chapters"`
}

// BookSummary describes one book for listings: its canonical code, display
// names in both languages, and chapter count.
type BookSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Chapters    int    `json:"chapters"`
}

// VersePair aligns one verse across both languages. Either side may be
// empty when the translations disagree on verse numbering.
type VersePair struct {
	Number  string `json:"number"`
	Tongan  string `json:"tongan"`
	English string `json:"english"`
}

// ParallelChapter is a chapter rendered with both languages side by side.
type ParallelChapter struct {
	Book    string      `json:"book"`
	Chapter int         `json:"chapter"`
	Verses  []VersePair `json:"verses"`
}

type booksIndex struct {
	Books []string `yaml:"books"`
}

// Store holds both translations in memory. It is created once at startup
// and is read-only afterwards, so it is safe for concurrent use.
type Store struct {
	order     []string
	languages map[Language]map[string]Book
}

// NewStore reads the books index and one JSON file per language from dir
// (tongan.json and english.json).
func NewStore(dir, booksFile string) (*Store, error) {
	index, err := readBooksIndex(booksFile)
	if err != nil {
		return nil, fmt.Errorf("readBooksIndex(%s) > %w", booksFile, err)
	}

	languages := make(map[Language]map[string]Book, 2)
	for _, lang := range []Language{LanguageTongan, LanguageEnglish} {
		path := filepath.Join(dir, string(lang)+".json")
		books, err := readBibleFile(path)
		if err != nil {
			return nil, fmt.Errorf("readBibleFile(%s) > %w", path, err)
		}
		languages[lang] = books
	}

	return &Store{
		order:     index.Books,
		languages: languages,
	}, nil
}

func readBooksIndex(path string) (booksIndex, error) {
	var index booksIndex

	file, err := os.Open(path)
	if err != nil {
		return index, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&index); err != nil {
		return index, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	if len(index.Books) == 0 {
		return index, fmt.Errorf("books index %s lists no books", path)
	}
	return index, nil
}

func readBibleFile(path string) (map[string]Book, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var books map[string]Book
	if err := json.Unmarshal(contents, &books); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return books, nil
}

// Books lists every book in canonical order. Books named in the index but
// missing from the text files are skipped.
func (s *Store) Books() []BookSummary {
	summaries := make([]BookSummary, 0, len(s.order))
	for _, id := range s.order {
		tongan, ok := s.languages[LanguageTongan][id]
		if !ok {
			continue
		}
		summary := BookSummary{
			ID:       id,
			Name:     tongan.Name,
			Chapters: len(tongan.Chapters),
		}
		if english, ok := s.languages[LanguageEnglish][id]; ok {
			summary.EnglishName = english.Name
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Book returns the summary for one book code.
func (s *Store) Book(id string) (BookSummary, bool) {
	for _, summary := range s.Books() {
		if summary.ID == id {
			return summary, true
		}
	}
	return BookSummary{}, false
}

// Chapter returns one chapter of a book in the requested language. Unknown
// book codes, chapters, or languages are a not-found, never an error.
func (s *Store) Chapter(lang Language, bookID string, chapter int) (Chapter, bool) {
	books, ok := s.languages[lang]
	if !ok {
		return nil, false
	}
	book, ok := books[bookID]
	if !ok {
		return nil, false
	}
	verses, ok := book.Chapters[strconv.Itoa(chapter)]
	return verses, ok
}

// ParallelChapter aligns the Tongan and English texts of a chapter by verse
// number. The Tongan verse order drives the output; English verses that
// have no Tongan counterpart are appended at the end in their own order.
func (s *Store) ParallelChapter(bookID string, chapter int) (ParallelChapter, bool) {
	tongan, tonganOK := s.Chapter(LanguageTongan, bookID, chapter)
	english, englishOK := s.Chapter(LanguageEnglish, bookID, chapter)
	if !tonganOK && !englishOK {
		return ParallelChapter{}, false
	}

	englishByNumber := make(map[string]string, len(english))
	for _, verse := range english {
		englishByNumber[verse.Number] = verse.Text
	}

	parallel := ParallelChapter{
		Book:    bookID,
		Chapter: chapter,
		Verses:  make([]VersePair, 0, len(tongan)),
	}
	seen := make(map[string]bool, len(tongan))
	for _, verse := range tongan {
		parallel.Verses = append(parallel.Verses, VersePair{
			Number:  verse.Number,
			Tongan:  verse.Text,
			English: englishByNumber[verse.Number],
		})
		seen[verse.Number] = true
	}
	for _, verse := range english {
		if !seen[verse.Number] {
			parallel.Verses = append(parallel.Verses, VersePair{
				Number:  verse.Number,
				English: verse.Text,
			})
		}
	}
	return parallel, true
}
