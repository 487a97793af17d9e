package server

import (
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tsawler/docdash/ai"
	"github.com/tsawler/docdash/report"
)

// Config holds server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// UploadDir is where uploaded source files are stored.
	UploadDir string

	// ReportDir is where generated dashboards are stored and served from.
	ReportDir string

	// MaxUploadBytes caps the size of one uploaded document.
	MaxUploadBytes int64

	// AllowedOrigins configures CORS for browser clients.
	AllowedOrigins []string
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		UploadDir:      "uploads",
		ReportDir:      report.DefaultOutputDir,
		MaxUploadBytes: 32 << 20, // 32 MiB
		AllowedOrigins: []string{"*"},
	}
}

// Document is one uploaded document held in the registry.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Chars      int       `json:"chars"`
	UploadedAt time.Time `json:"uploaded_at"`

	// Text is the extracted document text. It stays server-side.
	Text string `json:"-"`
}

// Server serves the upload, dashboard, and chat endpoints.
type Server struct {
	config    Config
	assistant ai.Assistant
	log       *slog.Logger

	mu   sync.RWMutex
	docs map[string]*Document
}

// New creates a Server. A nil assistant falls back to ai.Noop; a nil
// logger falls back to slog.Default().
func New(config Config, assistant ai.Assistant, log *slog.Logger) *Server {
	if assistant == nil {
		assistant = ai.Noop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		config:    config,
		assistant: assistant,
		log:       log,
		docs:      make(map[string]*Document),
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/documents", s.handleUpload)
	r.Get("/documents", s.handleListDocuments)
	r.Post("/documents/{id}/dashboard", s.handleGenerateDashboard)
	r.Post("/documents/{id}/summary", s.handleSummary)
	r.Post("/documents/{id}/ask", s.handleAsk)
	r.Post("/compare", s.handleCompare)
	r.Get("/dashboards/{file}", s.handleServeDashboard)

	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", "addr", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, s.Router())
}

// register stores a document in the registry.
func (s *Server) register(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

// document looks a document up by id.
func (s *Server) document(id string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// documents returns all registered documents, oldest first.
func (s *Server) documents() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UploadedAt.Equal(out[j].UploadedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UploadedAt.Before(out[j].UploadedAt)
	})
	return out
}
