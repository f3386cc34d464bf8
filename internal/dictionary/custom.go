package dictionary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/havili/tohitapu/internal/tongan"
)

// Header is the fixed first line of the custom dictionary file.
const Header = "tongan_word,english_translation,part_of_speech,example_sentence"

// customFieldCount is the column count of the custom store: word,
// translation, part of speech, example sentence.
const customFieldCount = 4

// CustomStore is the append-only flat file of user-saved words. The file is
// created lazily on first save, seeded with a header row. Records are
// never updated or deleted; when duplicate headwords exist, Lookup returns
// the first match in file order.
//
// The store assumes a single writer process. Concurrent appends from
// multiple processes may interleave.
type CustomStore struct {
	path string
}

// NewCustomStore creates a CustomStore backed by the file at path.
func NewCustomStore(path string) *CustomStore {
	return &CustomStore{path: path}
}

// Path returns the backing file path.
func (s *CustomStore) Path() string {
	return s.path
}

// Lookup scans the store for the first record whose headword normalizes to
// the same key as word. A missing backing file is an ordinary not-found,
// not an error.
func (s *CustomStore) Lookup(ctx context.Context, word string) (CustomEntry, bool, error) {
	entries, err := s.ReadAll(ctx)
	if err != nil {
		return CustomEntry{}, false, err
	}

	query := tongan.Normalize(word)
	for _, entry := range entries {
		if tongan.Normalize(entry.Word) == query {
			return entry, true, nil
		}
	}
	return CustomEntry{}, false, nil
}

// ReadAll returns every well-formed record in file order. Records with
// fewer than four fields are skipped. A missing file yields no entries.
func (s *CustomStore) ReadAll(ctx context.Context) ([]CustomEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	lines := strings.Split(string(contents), "\n")

	var entries []CustomEntry
	// The first line is the header.
	for _, line := range lines[1:] {
		fields := ParseRecord(line)
		if len(fields) < customFieldCount {
			continue
		}
		entries = append(entries, CustomEntry{
			Word:         fields[0],
			Translation:  fields[1],
			PartOfSpeech: fields[2],
			Example:      fields[3],
		})
	}
	return entries, nil
}

// Append validates and persists one entry at the end of the store. Word and
// Translation must be non-empty; the remaining fields default to empty
// strings. The containing directory and the file itself are created on
// first use, the file seeded with the header row before any data row.
func (s *CustomStore) Append(entry CustomEntry) error {
	if entry.Word == "" {
		return ErrMissingWord
	}
	if entry.Translation == "" {
		return ErrMissingTranslation
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte(Header+"\n"), 0644); err != nil {
			return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
		}
	} else if err != nil {
		return fmt.Errorf("os.Stat(%s) > %w", s.path, err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("os.OpenFile(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	record := FormatRecord(entry.Word, entry.Translation, entry.PartOfSpeech, entry.Example)
	if _, err := file.WriteString(record + "\n"); err != nil {
		return fmt.Errorf("file.WriteString > %w", err)
	}
	return nil
}
