// Package pdf renders markdown documents to PDF.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// RenderFile converts a markdown file to a PDF at pdfPath. When pdfPath is
// empty the PDF is written next to the markdown file with the extension
// swapped. Returns the absolute path of the generated file.
func RenderFile(markdownPath, pdfPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	if pdfPath == "" {
		pdfPath = strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	}

	contents, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(contents); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
