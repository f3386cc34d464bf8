// Package cli implements the interactive commands of the tohitapu binary.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/havili/tohitapu/internal/dictionary"
	"github.com/havili/tohitapu/internal/lookup"
)

// LookupCLI resolves a word through the fallback chain and prints the
// outcome.
type LookupCLI struct {
	resolver *lookup.Resolver
	store    *dictionary.CustomStore
	out      io.Writer
}

// NewLookupCLI creates a LookupCLI writing to out.
func NewLookupCLI(resolver *lookup.Resolver, store *dictionary.CustomStore, out io.Writer) *LookupCLI {
	return &LookupCLI{
		resolver: resolver,
		store:    store,
		out:      out,
	}
}

// Run resolves word and prints the result with its provenance. When save is
// set and the word resolved via translation, the result is persisted into
// the custom dictionary.
func (c *LookupCLI) Run(ctx context.Context, word string, save bool) error {
	outcome, err := c.resolver.Resolve(ctx, word)
	if err != nil {
		return fmt.Errorf("resolver.Resolve(%s) > %w", word, err)
	}

	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	switch outcome.Source {
	case lookup.SourceReference:
		heading.Fprintf(c.out, "%s", outcome.Reference.Word)
		fmt.Fprintf(c.out, "  (reference dictionary)\n")
		label.Fprint(c.out, "part of speech: ")
		fmt.Fprintln(c.out, outcome.Reference.PartOfSpeech)
		label.Fprint(c.out, "meaning: ")
		fmt.Fprintln(c.out, outcome.Reference.Meaning)

	case lookup.SourceCustom:
		heading.Fprintf(c.out, "%s", outcome.Custom.Word)
		fmt.Fprintf(c.out, "  (my dictionary)\n")
		label.Fprint(c.out, "translation: ")
		fmt.Fprintln(c.out, outcome.Custom.Translation)
		if outcome.Custom.PartOfSpeech != "" {
			label.Fprint(c.out, "part of speech: ")
			fmt.Fprintln(c.out, outcome.Custom.PartOfSpeech)
		}
		if outcome.Custom.Example != "" {
			label.Fprint(c.out, "example: ")
			fmt.Fprintln(c.out, outcome.Custom.Example)
		}

	case lookup.SourceTranslated:
		heading.Fprintf(c.out, "%s", word)
		fmt.Fprintf(c.out, "  (machine translation)\n")
		label.Fprint(c.out, "translation: ")
		fmt.Fprintln(c.out, outcome.Translation.Text)
		if save {
			if err := lookup.SaveTranslation(c.store, word, *outcome.Translation); err != nil {
				return fmt.Errorf("lookup.SaveTranslation > %w", err)
			}
			fmt.Fprintln(c.out, "saved to my dictionary")
		}

	case lookup.SourceNone:
		fmt.Fprintf(c.out, "no result for %q\n", word)
		if outcome.TranslationErr != nil {
			fmt.Fprintf(c.out, "translation unavailable: %v\n", outcome.TranslationErr)
		}
	}
	return nil
}
