// Package server exposes the scan pipeline over HTTP: upload an image,
// run it through recognition and extraction, and keep a scan history.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/receiptlens/backend/internal/extraction"
	"github.com/receiptlens/backend/internal/ocr"
	"github.com/receiptlens/backend/internal/store"
)

// maxUploadBytes caps receipt image uploads at 16MB.
const maxUploadBytes = 16 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Server handles the scan API.
type Server struct {
	store      store.Store
	recognizer ocr.Recognizer
	uploadDir  string
	logger     *slog.Logger
	mux        *http.ServeMux
}

// New creates a Server. uploadDir may be empty to skip archiving the
// uploaded images.
func New(st store.Store, recognizer ocr.Recognizer, uploadDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		store:      st,
		recognizer: recognizer,
		uploadDir:  uploadDir,
		logger:     logger,
		mux:        http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/scan", s.handleScan)
	s.mux.HandleFunc("GET /api/history", s.handleHistory)
	s.mux.HandleFunc("DELETE /api/history/{id}", s.handleDelete)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported file type %q", ext))
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read file")
		return
	}
	if len(image) == 0 {
		writeError(w, http.StatusBadRequest, "empty file")
		return
	}

	if s.uploadDir != "" {
		if err := s.archiveUpload(image, ext); err != nil {
			// Archival is best-effort; the scan still proceeds.
			s.logger.Warn("failed to archive upload", "error", err)
		}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/" + strings.TrimPrefix(ext, ".")
	}

	text, err := s.recognizer.Recognize(r.Context(), image, contentType)
	if err != nil {
		s.logger.Error("recognition failed", "error", err)
		writeError(w, http.StatusBadGateway, "text recognition failed")
		return
	}

	receipt, err := extraction.Extract(text)
	if err != nil {
		if errors.Is(err, extraction.ErrEmptyText) {
			writeError(w, http.StatusUnprocessableEntity, "no text could be read from the image")
			return
		}
		s.logger.Error("extraction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "extraction failed")
		return
	}

	record := &store.ScanRecord{
		Merchant: store.DeriveMerchant(text),
		Receipt:  *receipt,
	}
	if err := s.store.SaveScan(r.Context(), record); err != nil {
		s.logger.Error("failed to save scan", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save scan")
		return
	}

	s.logger.Info("scan processed",
		"id", record.ID,
		"merchant", record.Merchant,
		"total", record.Receipt.Total,
		"items", len(record.Receipt.Items),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Success",
		"data":    record,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListScans(r.Context())
	if err != nil {
		s.logger.Error("failed to list scans", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Success",
		"data":    records,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.store.DeleteScan(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "scan not found")
			return
		}
		s.logger.Error("failed to delete scan", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete scan")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Deleted",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{"status": "healthy"}
	code := http.StatusOK

	if hc, ok := s.recognizer.(interface{ Health(context.Context) error }); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := hc.Health(ctx); err != nil {
			status["status"] = "degraded"
			status["ocr"] = err.Error()
			code = http.StatusServiceUnavailable
		}
	}
	writeJSON(w, code, status)
}

// archiveUpload writes the raw image under uploadDir with a generated name.
func (s *Server) archiveUpload(image []byte, ext string) error {
	if err := os.MkdirAll(s.uploadDir, 0755); err != nil {
		return fmt.Errorf("creating upload dir: %w", err)
	}
	name := uuid.New().String() + ext
	return os.WriteFile(filepath.Join(s.uploadDir, name), image, 0644)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
