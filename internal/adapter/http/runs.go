package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// handleListRuns returns the recent run history, newest first. The limit
// query parameter caps the page size; the use case applies its own bounds.
func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.svc.ListRuns(r.Context(), limit)
	if err != nil {
		h.logger.Error("list runs error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(runs); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
