package extract

import (
	"os"
	"path/filepath"
	"testing"

	docx "github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"notes.pdf", true},
		{"notes.docx", true},
		{"notes.txt", true},
		{"NOTES.PDF", true}, // extension matching is case-insensitive
		{"notes.doc", false},
		{"notes.exe", false},
		{"notes", false}, // no dot, no extension
		{"", false},
	}
	for _, tt := range tests {
		if got := Allowed(tt.filename); got != tt.want {
			t.Errorf("Allowed(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestExtensions(t *testing.T) {
	got := Extensions()
	want := []string{"docx", "pdf", "txt"}
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Extensions() = %v, want %v", got, want)
		}
		if !Allowed("notes." + got[i]) {
			t.Fatalf("Extensions() lists %q but Allowed rejects it", got[i])
		}
	}
}

func TestTxtVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
}

func TestTxtEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Text(path)
	if err != nil {
		t.Fatalf("empty document must not be an error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestDocxParagraphs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paras.docx")

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("A")
	doc.AddParagraph().AddText("B")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		t.Fatalf("write docx: %v", err)
	}
	f.Close()

	got, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A\nB" {
		t.Fatalf("expected %q, got %q", "A\nB", got)
	}
}

func TestPdfSkipsEmptyPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.pdf")

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Arial", "", 12)
	doc.AddPage()
	doc.CellFormat(0, 8, "X", "", 1, "L", false, 0, "")
	doc.AddPage() // second page has no text
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("write pdf: %v", err)
	}

	got, err := Text(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The empty page contributes nothing, not even a separator.
	if got != "X" {
		t.Fatalf("expected %q, got %q", "X", got)
	}
}

func TestTextUnsupportedExtension(t *testing.T) {
	if _, err := Text("malware.exe"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
