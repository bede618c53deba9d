package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abhisek/quizforge/internal/artifact"
	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/mcq"
)

// Form field defaults for /upload.
const (
	defaultQuestionCount = 5
	defaultDifficulty    = "Medium"
	defaultOptionCount   = 4
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", nil)
}

// resultPage is the data for the rendered upload response.
type resultPage struct {
	Text     string
	Artifact string
}

// handleUpload runs the full pipeline for one request:
// validate → persist upload → extract → generate → write → respond.
// Each stage feeds the next; nothing runs concurrently within a request.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w,
				fmt.Sprintf("upload exceeds the %d byte limit", s.cfg.MaxUploadBytes),
				http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := SanitizeFilename(header.Filename)
	if !extract.Allowed(filename) {
		http.Error(w,
			"unsupported file type: allowed extensions are "+strings.Join(extract.Extensions(), ", "),
			http.StatusBadRequest)
		return
	}

	params, err := parseParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	uploadPath := filepath.Join(s.cfg.UploadDir, filename)
	if err := saveUpload(file, uploadPath); err != nil {
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	text, err := extract.Text(uploadPath)
	if err != nil {
		http.Error(w, "text extraction failed", http.StatusInternalServerError)
		return
	}

	// Empty extracted text is not an error: the degenerate prompt
	// proceeds to generation and yields whatever the model makes of it.
	generated, err := s.generator.Generate(r.Context(), text, params)
	if err != nil {
		http.Error(w, "question generation failed", http.StatusInternalServerError)
		return
	}

	artifactName := artifact.Name(filename)
	if _, err := s.writer.Write(generated, artifactName); err != nil {
		http.Error(w, "failed to write artifact", http.StatusInternalServerError)
		return
	}

	s.render(w, "result.html", resultPage{Text: generated, Artifact: artifactName})
}

// handleDownload streams a generated artifact as an attachment.
// A filename that was never generated answers 404.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request, name string) {
	name = SanitizeFilename(name)
	if name == "" {
		http.Error(w, "artifact name required", http.StatusBadRequest)
		return
	}

	path := filepath.Join(s.cfg.ResultsDir, name)
	f, err := os.Open(path)
	if err != nil {
		http.Error(w, "artifact not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, "artifact not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+EscapeFilename(name)+`"`)
	http.ServeContent(w, r, name, info.ModTime(), f)
}

// parseParams reads the generation form fields, applying defaults for
// absent values. Unparsable or out-of-range values reject the request.
func parseParams(r *http.Request) (mcq.Params, error) {
	p := mcq.Params{
		QuestionCount: defaultQuestionCount,
		Difficulty:    defaultDifficulty,
		OptionCount:   defaultOptionCount,
	}

	if v := r.FormValue("num_mcqs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return mcq.Params{}, fmt.Errorf("num_mcqs must be a positive integer")
		}
		p.QuestionCount = n
	}

	if v := r.FormValue("difficulty"); v != "" {
		p.Difficulty = v
	}

	if v := r.FormValue("num_options"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			return mcq.Params{}, fmt.Errorf("num_options must be an integer of at least 2")
		}
		p.OptionCount = n
	}

	return p, nil
}

// saveUpload persists the uploaded stream, overwriting an existing
// upload with the same name.
func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// render executes tmpl into a buffer first so a template failure still
// produces a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, tmpl string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
