package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sentivora/mlr-automation/internal/core/port"
)

// Handler is the inbound HTTP adapter: it exposes the upload pipeline,
// deck downloads and the run history over a chi router.
type Handler struct {
	svc       port.AssemblyUseCase
	storage   port.BlobStorage
	uploadDir string
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. uploadDir is
// where multipart uploads are spooled before extraction.
func NewHandler(svc port.AssemblyUseCase, storage port.BlobStorage, uploadDir string, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, storage: storage, uploadDir: uploadDir, logger: logger}
	r := chi.NewRouter()

	r.Get("/health", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/decks", h.handleCreateDeck)
		r.Get("/decks/{name}", h.handleGetDeck)
		r.Get("/runs", h.handleListRuns)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
