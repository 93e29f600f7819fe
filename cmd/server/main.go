package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"

	"github.com/receiptlens/backend/internal/ocr"
	"github.com/receiptlens/backend/internal/server"
	"github.com/receiptlens/backend/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	st, err := buildStore(logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	ocrURL := os.Getenv("OCR_SERVICE_URL")
	if ocrURL == "" {
		ocrURL = "http://localhost:5001"
	}
	recognizer := ocr.NewClient(ocrURL)

	uploadDir := os.Getenv("UPLOAD_DIR")
	srv := server.New(st, recognizer, uploadDir, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
	})

	logger.Info("starting server", "port", port, "ocr_url", ocrURL)
	if err := http.ListenAndServe(":"+port, c.Handler(srv)); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// buildStore picks the persistence backend from the environment.
// STORE_BACKEND is one of memory, file (default) or bolt; USE_MEMORY_STORE
// is kept as a shortcut for local development.
func buildStore(logger *slog.Logger) (store.Store, error) {
	backend := os.Getenv("STORE_BACKEND")
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		backend = "memory"
	}

	path := os.Getenv("STORE_PATH")

	switch backend {
	case "memory":
		logger.Info("using in-memory store")
		return store.NewMemoryStore(), nil
	case "bolt":
		if path == "" {
			path = "scans.db"
		}
		logger.Info("using bolt store", "path", path)
		return store.NewBoltStore(path)
	default:
		if path == "" {
			path = "database.json"
		}
		logger.Info("using file store", "path", path)
		return store.NewFileStore(path)
	}
}

func allowedOrigins() []string {
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		return origins
	}
	return []string{
		"http://localhost:1234",
		"http://127.0.0.1:1234",
		"http://localhost:3000",
	}
}
