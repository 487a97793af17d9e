package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tsawler/docdash"
	"github.com/tsawler/docdash/report"
	"github.com/tsawler/docdash/tables"
)

type errorResponse struct {
	Error string `json:"error"`
}

type dashboardResponse struct {
	Report string `json:"report"`
	URL    string `json:"url"`
}

type questionRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

type compareRequest struct {
	FirstID  string `json:"first_id"`
	SecondID string `json:"second_id"`
}

// allowedUploadExts are the source formats the upload endpoint accepts.
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// handleUpload accepts one multipart file under the "file" field, saves it
// under the upload directory with a fresh id, extracts its text, and
// registers it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing or oversized file upload")
		return
	}
	defer file.Close()

	name := filepath.Base(header.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedUploadExts[ext] {
		respondError(w, http.StatusUnsupportedMediaType, "unsupported file type "+ext)
		return
	}

	if err := os.MkdirAll(s.config.UploadDir, 0o755); err != nil {
		s.log.Error("upload dir unavailable", "dir", s.config.UploadDir, "error", err)
		respondError(w, http.StatusInternalServerError, "upload storage unavailable")
		return
	}

	id := uuid.NewString()
	savedPath := filepath.Join(s.config.UploadDir, id+ext)
	dst, err := os.Create(savedPath)
	if err != nil {
		s.log.Error("saving upload failed", "path", savedPath, "error", err)
		respondError(w, http.StatusInternalServerError, "could not save upload")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(savedPath)
		respondError(w, http.StatusInternalServerError, "could not save upload")
		return
	}
	dst.Close()

	// Extraction failures (malformed/encrypted source) surface to the
	// client as-is; nothing gets registered.
	text, err := docdash.FromFile(savedPath).Text()
	if err != nil {
		os.Remove(savedPath)
		s.log.Warn("text extraction failed", "name", name, "error", err)
		respondError(w, http.StatusUnprocessableEntity, "text extraction failed: "+err.Error())
		return
	}

	doc := &Document{
		ID:         id,
		Name:       name,
		Chars:      len(text),
		UploadedAt: time.Now().UTC(),
		Text:       text,
	}
	s.register(doc)
	s.log.Info("document registered", "id", doc.ID, "name", doc.Name, "chars", doc.Chars)

	respondJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.documents())
}

// handleGenerateDashboard runs the pipeline for an uploaded document and
// returns the stored report handle.
func (s *Server) handleGenerateDashboard(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown document id")
		return
	}

	handle, err := docdash.FromText(doc.Text).
		Title(doc.Name).
		OutputDir(s.config.ReportDir).
		Generate(docdash.BaseName(doc.Name))
	if err != nil {
		var ntd *tables.NoTabularDataError
		var se *report.StorageError
		switch {
		case errors.As(err, &ntd):
			respondError(w, http.StatusUnprocessableEntity, "no table-like data found in document")
		case errors.As(err, &se):
			s.log.Error("report storage failed", "id", doc.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "could not store dashboard")
		default:
			s.log.Error("dashboard generation failed", "id", doc.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "dashboard generation failed")
		}
		return
	}

	s.log.Info("dashboard generated", "id", doc.ID, "report", handle)
	respondJSON(w, http.StatusOK, dashboardResponse{
		Report: handle,
		URL:    "/dashboards/" + filepath.Base(handle),
	})
}

// handleServeDashboard serves a stored report file.
func (s *Server) handleServeDashboard(w http.ResponseWriter, r *http.Request) {
	file := filepath.Base(chi.URLParam(r, "file"))
	if filepath.Ext(file) != ".html" {
		respondError(w, http.StatusNotFound, "no such dashboard")
		return
	}
	path := filepath.Join(s.config.ReportDir, file)
	if _, err := os.Stat(path); err != nil {
		respondError(w, http.StatusNotFound, "no such dashboard")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown document id")
		return
	}

	summary, err := s.assistant.Summarize(r.Context(), doc.Text)
	if err != nil {
		s.log.Error("summarization failed", "id", doc.ID, "error", err)
		respondError(w, http.StatusBadGateway, "summarization failed")
		return
	}
	respondJSON(w, http.StatusOK, answerResponse{Answer: summary})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown document id")
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		respondError(w, http.StatusBadRequest, "a question is required")
		return
	}

	answer, err := s.assistant.Ask(r.Context(), req.Question, doc.Text)
	if err != nil {
		s.log.Error("question answering failed", "id", doc.ID, "error", err)
		respondError(w, http.StatusBadGateway, "question answering failed")
		return
	}
	respondJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "first_id and second_id are required")
		return
	}

	first, ok := s.document(req.FirstID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown document id "+req.FirstID)
		return
	}
	second, ok := s.document(req.SecondID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown document id "+req.SecondID)
		return
	}

	result, err := s.assistant.Compare(r.Context(), first.Name, first.Text, second.Name, second.Text)
	if err != nil {
		s.log.Error("comparison failed", "first", first.ID, "second", second.ID, "error", err)
		respondError(w, http.StatusBadGateway, "comparison failed")
		return
	}
	respondJSON(w, http.StatusOK, answerResponse{Answer: result})
}
