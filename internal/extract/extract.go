// Package extract converts uploaded documents into plain text.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// allowedExtensions is the fixed allow-set of upload types.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Allowed reports whether filename has an extension in the allow-set.
// A name without a dot has no extension and is never allowed.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	return allowedExtensions[ext]
}

// Extensions returns the allow-set, sorted, without leading dots.
func Extensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(exts)
	return exts
}

// Text extracts the plain text of the document at path, dispatching on
// the file extension. A document with no extractable text yields an
// empty string, not an error.
func Text(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return pdfText(path)
	case ".docx":
		return docxText(path)
	case ".txt":
		return txtText(path)
	default:
		return "", fmt.Errorf("unsupported extension %q", ext)
	}
}

// txtText reads the whole file verbatim as UTF-8 text.
func txtText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}
