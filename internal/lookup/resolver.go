// Package lookup sequences the word resolution fallback chain: reference
// dictionary, then custom dictionary, then the translation provider.
package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/havili/tohitapu/internal/dictionary"
	"github.com/havili/tohitapu/internal/translator"
)

// Source identifies which stage of the fallback chain produced an outcome.
type Source string

const (
	SourceReference  Source = "reference"
	SourceCustom     Source = "custom"
	SourceTranslated Source = "translated"
	SourceNone       Source = "none"
)

// Outcome is the result of resolving a word. Exactly one of Reference,
// Custom, and Translation is set, matching Source; all are nil when Source
// is SourceNone. TranslationErr carries the final stage's failure detail
// when the chain was exhausted by a provider failure rather than a clean
// miss.
type Outcome struct {
	Source         Source
	Reference      *dictionary.Entry
	Custom         *dictionary.CustomEntry
	Translation    *translator.Result
	TranslationErr error
}

// ReferenceLookup is the first stage of the chain.
type ReferenceLookup interface {
	Lookup(ctx context.Context, word string) (dictionary.Entry, bool, error)
}

// CustomLookup is the second stage of the chain.
type CustomLookup interface {
	Lookup(ctx context.Context, word string) (dictionary.CustomEntry, bool, error)
}

// Translator is the final stage of the chain.
type Translator interface {
	Translate(ctx context.Context, text string) (translator.Result, error)
}

// Appender persists a resolved translation into the custom dictionary.
type Appender interface {
	Append(entry dictionary.CustomEntry) error
}

// Resolver drives the three-stage fallback chain. Stages run strictly in
// order and short-circuit on the first hit. A failure in an earlier stage
// is logged and treated as a miss so later stages still run; a failure in
// the final stage yields the SourceNone outcome with the detail attached.
// No stage is retried at this layer.
type Resolver struct {
	reference  ReferenceLookup
	custom     CustomLookup
	translator Translator
	logger     *slog.Logger
}

// NewResolver creates a Resolver over the three stages. logger may be nil,
// in which case the default logger is used.
func NewResolver(reference ReferenceLookup, custom CustomLookup, trans Translator, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		reference:  reference,
		custom:     custom,
		translator: trans,
		logger:     logger,
	}
}

// Resolve runs the fallback chain for word. The returned error is non-nil
// only when ctx was canceled; every other failure mode is folded into the
// outcome so that a miss is always a valid terminal state. After
// cancellation no further stage runs.
func (r *Resolver) Resolve(ctx context.Context, word string) (Outcome, error) {
	entry, found, err := r.reference.Lookup(ctx, word)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Outcome{}, ctxErr
		}
		r.logger.Warn("reference dictionary lookup failed", "word", word, "error", err)
	} else if found {
		return Outcome{Source: SourceReference, Reference: &entry}, nil
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	customEntry, found, err := r.custom.Lookup(ctx, word)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Outcome{}, ctxErr
		}
		r.logger.Warn("custom dictionary lookup failed", "word", word, "error", err)
	} else if found {
		return Outcome{Source: SourceCustom, Custom: &customEntry}, nil
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	result, err := r.translator.Translate(ctx, word)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Outcome{}, ctxErr
		}
		r.logger.Warn("translation fallback failed", "word", word, "error", err)
		return Outcome{Source: SourceNone, TranslationErr: err}, nil
	}
	return Outcome{Source: SourceTranslated, Translation: &result}, nil
}

// SaveTranslation persists a translated word into the custom dictionary so
// later resolutions find it there instead of calling the provider again.
// The part of speech is recorded as "unknown" and the example left empty.
func SaveTranslation(store Appender, word string, result translator.Result) error {
	err := store.Append(dictionary.CustomEntry{
		Word:         word,
		Translation:  result.Text,
		PartOfSpeech: "unknown",
		Example:      "",
	})
	if err != nil {
		return fmt.Errorf("store.Append(%s) > %w", word, err)
	}
	return nil
}
