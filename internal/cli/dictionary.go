package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/havili/tohitapu/internal/assets"
	"github.com/havili/tohitapu/internal/dictionary"
	"github.com/havili/tohitapu/internal/pdf"
)

// Export formats supported by DictionaryCLI.Export.
const (
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// DictionaryCLI prints and exports the custom dictionary.
type DictionaryCLI struct {
	store *dictionary.CustomStore
	out   io.Writer
}

// NewDictionaryCLI creates a DictionaryCLI writing to out.
func NewDictionaryCLI(store *dictionary.CustomStore, out io.Writer) *DictionaryCLI {
	return &DictionaryCLI{
		store: store,
		out:   out,
	}
}

// List prints every saved word in file order.
func (c *DictionaryCLI) List(ctx context.Context) error {
	entries, err := c.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("store.ReadAll > %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "my dictionary is empty")
		return nil
	}

	headword := color.New(color.FgCyan, color.Bold)
	for _, entry := range entries {
		headword.Fprint(c.out, entry.Word)
		fmt.Fprintf(c.out, " - %s", entry.Translation)
		if entry.PartOfSpeech != "" {
			fmt.Fprintf(c.out, " (%s)", entry.PartOfSpeech)
		}
		fmt.Fprintln(c.out)
		if entry.Example != "" {
			fmt.Fprintf(c.out, "    %s\n", entry.Example)
		}
	}
	return nil
}

// Export renders the custom dictionary to a markdown study sheet at
// outputPath, and when format is "pdf" converts it as well. When
// templatePath is empty the embedded template is used. Returns the path
// of the generated file.
func (c *DictionaryCLI) Export(ctx context.Context, format, outputPath, templatePath string) (string, error) {
	if format != FormatMarkdown && format != FormatPDF {
		return "", fmt.Errorf("unsupported export format: %s", format)
	}

	entries, err := c.store.ReadAll(ctx)
	if err != nil {
		return "", fmt.Errorf("store.ReadAll > %w", err)
	}

	var buf bytes.Buffer
	if err := assets.WriteDictionary(&buf, exportData(entries), templatePath); err != nil {
		return "", fmt.Errorf("assets.WriteDictionary > %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
	}

	if format == FormatMarkdown {
		return outputPath, nil
	}

	pdfPath, err := pdf.RenderFile(outputPath, "")
	if err != nil {
		return "", fmt.Errorf("pdf.RenderFile(%s) > %w", outputPath, err)
	}
	return pdfPath, nil
}

func exportData(entries []dictionary.CustomEntry) assets.DictionaryTemplate {
	data := assets.DictionaryTemplate{
		Title:   "My Tongan Dictionary",
		Entries: make([]assets.DictionaryEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		data.Entries = append(data.Entries, assets.DictionaryEntry{
			Word:         entry.Word,
			Translation:  entry.Translation,
			PartOfSpeech: entry.PartOfSpeech,
			Example:      entry.Example,
		})
	}
	return data
}
