package assets

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/my-dictionary.md.go.tmpl
var dictionaryTemplate string

// DictionaryTemplate is the data rendered into the dictionary export template.
type DictionaryTemplate struct {
	Title   string
	Entries []DictionaryEntry
}

// DictionaryEntry is one saved word in the export.
type DictionaryEntry struct {
	Word         string
	Translation  string
	PartOfSpeech string
	Example      string
}

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	// If template path is empty, use fallback directly
	if templatePath == "" {
		fileName := "my-dictionary.md.go.tmpl"
		tmpl, err := template.New(fileName).
			Funcs(funcMap).
			Parse(string(fallbackTemplate))
		if err != nil {
			return nil, fmt.Errorf("failed to parse embedded template: %w", err)
		}
		return tmpl, nil
	}

	// If template path is provided, it must be valid.
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("template file not found or accessible: %w", err)
	}

	fileName := filepath.Base(templatePath)
	tmpl, err := template.New(fileName).
		Funcs(funcMap).
		ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", templatePath, err)
	}
	return tmpl, nil
}

// WriteDictionary renders the dictionary export to w. When templatePath
// is empty the embedded template is used.
func WriteDictionary(w io.Writer, data DictionaryTemplate, templatePath string) error {
	tmpl, err := parseTemplateWithFallback(templatePath, dictionaryTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
