package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sentivora/mlr-automation/internal/core/port"
)

// maxUploadBytes caps the multipart body; creative archives run large but
// not unbounded.
const maxUploadBytes = 512 << 20

// handleCreateDeck accepts a multipart upload (field "file": a zip archive
// or single image) plus optional form fields:
//
//	annotations            "with_annos" (default) or "no_annos"
//	implement_video_frames "true" to replace instream/engaged sections
//	                       with video-frame grids
//	config                 JSON-encoded full assembly configuration,
//	                       overriding the simple fields above
//
// On success it responds 201 with the run summary. A structurally empty
// upload is a 422; anything else failing is a 500.
func (h *Handler) handleCreateDeck(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	cfg, err := parseAssemblyConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	uploadPath, err := h.spool(file, header.Filename)
	if err != nil {
		h.logger.Error("spool upload error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(filepath.Dir(uploadPath))

	result, err := h.svc.ProcessUpload(r.Context(), uploadPath, header.Filename, cfg)
	if err != nil {
		if errors.Is(err, port.ErrNoAssets) {
			http.Error(w, "upload contains no readable images", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("process upload error",
			slog.String("file", header.Filename), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// parseAssemblyConfig builds the run configuration from the form. A
// "config" JSON field wins over the individual fields.
func parseAssemblyConfig(r *http.Request) (port.AssemblyConfig, error) {
	var cfg port.AssemblyConfig
	if raw := r.FormValue("config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return cfg, errors.New("invalid config JSON")
		}
		return cfg.Normalized(), nil
	}
	if v := r.FormValue("annotations"); v != "" {
		cfg.Annotations = port.AnnotationMode(v)
	}
	if v := r.FormValue("implement_video_frames"); v != "" {
		cfg.ImplementVideoFrames, _ = strconv.ParseBool(v)
	}
	return cfg.Normalized(), nil
}

// spool writes the uploaded stream into a per-request temp directory,
// keeping the original filename so extension-based handling works.
func (h *Handler) spool(src io.Reader, filename string) (string, error) {
	dir := filepath.Join(h.uploadDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(dir, filepath.Base(filename))
	dst, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return target, dst.Close()
}

// handleGetDeck streams a stored deck plan back to the caller.
func (h *Handler) handleGetDeck(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || strings.Contains(name, "..") {
		http.Error(w, "invalid deck name", http.StatusBadRequest)
		return
	}
	data, contentType, err := h.storage.Fetch(r.Context(), name)
	if errors.Is(err, port.ErrBlobNotFound) {
		http.Error(w, "deck not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("fetch deck error", slog.String("name", name), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Write(data)
}
