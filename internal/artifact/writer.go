// Package artifact serializes generated text into downloadable PDFs.
package artifact

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Arial"
	fontSize   = 12
	lineHeight = 8 // mm per text row
)

// Writer renders text documents into a results directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer that stores artifacts under dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders text into a single-column PDF, one fixed-height row per
// input line, and stores it under filename in the results directory.
// An existing artifact with the same name is silently overwritten.
// Page breaks are left to the document library.
func (w *Writer) Write(text, filename string) (string, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont(fontFamily, "", fontSize)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(text, "\n") {
		doc.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}

	path := filepath.Join(w.dir, filename)
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", filename, err)
	}
	return path, nil
}

// Name derives the artifact filename from an upload filename:
// the upload's stem plus the "_mcqs.pdf" suffix. The mapping is
// deterministic, so repeat uploads of the same name overwrite.
func Name(uploadName string) string {
	stem := strings.TrimSuffix(uploadName, filepath.Ext(uploadName))
	return stem + "_mcqs.pdf"
}
