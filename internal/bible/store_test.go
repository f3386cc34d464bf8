package bible

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tonganFixture = `{
  "MAT": {
    "name": "Matiu",
    "chapters": {
      "1": [
        {"number": "1", "text": "Ko e tohi hohoko ʻo Sisu Kalaisi"},
        {"number": "2", "text": "Naʻe fanauʻi ʻe ʻEpalahame ʻa ʻAisake"}
      ],
      "2": [
        {"number": "1", "text": "Pea kuo fanauʻi ʻa Sisu ʻi Petelihema"}
      ]
    }
  },
  "MRK": {
    "name": "Maʻake",
    "chapters": {
      "1": [
        {"number": "1", "text": "Ko e kamataʻanga ʻo e ongoongolelei"}
      ]
    }
  }
}`

const englishFixture = `{
  "MAT": {
    "name": "Matthew",
    "chapters": {
      "1": [
        {"number": "1", "text": "The book of the genealogy of Jesus Christ"},
        {"number": "2", "text": "Abraham was the father of Isaac"},
        {"number": "3", "text": "and Judah the father of Perez"}
      ]
    }
  },
  "MRK": {
    "name": "Mark",
    "chapters": {
      "1": [
        {"number": "1", "text": "The beginning of the gospel"}
      ]
    }
  }
}`

const booksFixture = "books:\n  - MAT\n  - MRK\n  - LUK\n"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tongan.json"), []byte(tonganFixture), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "english.json"), []byte(englishFixture), 0644))
	booksPath := filepath.Join(dir, "books.yml")
	require.NoError(t, os.WriteFile(booksPath, []byte(booksFixture), 0644))

	store, err := NewStore(dir, booksPath)
	require.NoError(t, err)
	return store
}

func TestNewStore_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	booksPath := filepath.Join(dir, "books.yml")
	require.NoError(t, os.WriteFile(booksPath, []byte(booksFixture), 0644))

	_, err := NewStore(dir, booksPath)
	assert.Error(t, err)
}

func TestStore_Books(t *testing.T) {
	store := newTestStore(t)

	books := store.Books()
	// LUK is in the index but absent from the text files.
	require.Len(t, books, 2)
	assert.Equal(t, BookSummary{ID: "MAT", Name: "Matiu", EnglishName: "Matthew", Chapters: 2}, books[0])
	assert.Equal(t, BookSummary{ID: "MRK", Name: "Maʻake", EnglishName: "Mark", Chapters: 1}, books[1])
}

func TestStore_Book(t *testing.T) {
	store := newTestStore(t)

	book, found := store.Book("MAT")
	require.True(t, found)
	assert.Equal(t, "Matiu", book.Name)

	_, found = store.Book("REV")
	assert.False(t, found)
}

func TestStore_Chapter(t *testing.T) {
	tests := []struct {
		name       string
		lang       Language
		book       string
		chapter    int
		wantFound  bool
		wantVerses int
	}{
		{name: "tongan chapter", lang: LanguageTongan, book: "MAT", chapter: 1, wantFound: true, wantVerses: 2},
		{name: "english chapter", lang: LanguageEnglish, book: "MAT", chapter: 1, wantFound: true, wantVerses: 3},
		{name: "unknown book", lang: LanguageTongan, book: "REV", chapter: 1, wantFound: false},
		{name: "unknown chapter", lang: LanguageTongan, book: "MAT", chapter: 99, wantFound: false},
		{name: "unknown language", lang: Language("latin"), book: "MAT", chapter: 1, wantFound: false},
	}

	store := newTestStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verses, found := store.Chapter(tt.lang, tt.book, tt.chapter)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Len(t, verses, tt.wantVerses)
			}
		})
	}
}

func TestStore_ParallelChapter(t *testing.T) {
	store := newTestStore(t)

	parallel, found := store.ParallelChapter("MAT", 1)
	require.True(t, found)
	assert.Equal(t, "MAT", parallel.Book)
	assert.Equal(t, 1, parallel.Chapter)
	require.Len(t, parallel.Verses, 3)

	assert.Equal(t, "1", parallel.Verses[0].Number)
	assert.Equal(t, "Ko e tohi hohoko ʻo Sisu Kalaisi", parallel.Verses[0].Tongan)
	assert.Equal(t, "The book of the genealogy of Jesus Christ", parallel.Verses[0].English)

	// Verse 3 exists only in the English text.
	assert.Equal(t, "3", parallel.Verses[2].Number)
	assert.Empty(t, parallel.Verses[2].Tongan)
	assert.Equal(t, "and Judah the father of Perez", parallel.Verses[2].English)

	_, found = store.ParallelChapter("REV", 1)
	assert.False(t, found)
}
