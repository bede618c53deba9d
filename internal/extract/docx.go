package extract

import (
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// docxText extracts paragraph texts joined by newlines, preserving
// document order. Tables and other body items are ignored.
func docxText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, para.String())
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
