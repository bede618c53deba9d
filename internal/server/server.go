// Package server is the HTTP surface: upload orchestration and downloads.
package server

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/quizforge/internal/config"
	"github.com/abhisek/quizforge/internal/mcq"
)

//go:embed templates/*
var templatesFS embed.FS

// QuestionGenerator produces MCQ text for extracted document text.
type QuestionGenerator interface {
	Generate(ctx context.Context, text string, p mcq.Params) (string, error)
}

// ArtifactWriter serializes generated text into a downloadable document.
type ArtifactWriter interface {
	Write(text, filename string) (string, error)
}

// Server handles uploads, runs the extract → generate → write pipeline,
// and serves generated artifacts.
type Server struct {
	cfg       *config.Config
	generator QuestionGenerator
	writer    ArtifactWriter
	templates *template.Template
}

// New creates a Server.
func New(cfg *config.Config, generator QuestionGenerator, writer ArtifactWriter) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       cfg,
		generator: generator,
		writer:    writer,
		templates: tmpl,
	}, nil
}

// Routes returns the request mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		s.handleHome(w, r)
	})

	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleUpload(w, r)
	})

	mux.HandleFunc("/download/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		s.handleDownload(w, r, strings.TrimPrefix(r.URL.Path, "/download/"))
	})

	return loggingMiddleware(mux)
}

// Start runs the HTTP server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:        s.cfg.Addr,
		Handler:     s.Routes(),
		ReadTimeout: 30 * time.Second,
		// Generation blocks the handler for the duration of the
		// inference call, so the write timeout must outlast it.
		WriteTimeout: s.cfg.Generation.Timeout + 30*time.Second,
	}

	log.Printf("[INFO] quizforge listening on %s", s.cfg.Addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
