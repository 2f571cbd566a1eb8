package settlement

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapay/albapay/internal/binuuid"
	"github.com/albapay/albapay/internal/settlement"
)

type Handler struct {
	svc *settlement.Service
}

func NewHandler(svc *settlement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{userId}", h.history)
	r.Get("/{userId}/monthly", h.monthly)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	start, err := time.Parse(time.DateOnly, r.URL.Query().Get("startDate"))
	if err != nil {
		http.Error(w, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	end, err := time.Parse(time.DateOnly, r.URL.Query().Get("endDate"))
	if err != nil {
		http.Error(w, "endDate must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	report, err := h.svc.History(r.Context(), userID, start, end)
	if err != nil {
		if errors.Is(err, binuuid.ErrInvalidFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toHistoryResponse(report)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year must be an integer", http.StatusBadRequest)
		return
	}

	summaries, err := h.svc.MonthlySummaries(r.Context(), userID, year)
	if err != nil {
		if errors.Is(err, binuuid.ErrInvalidFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toMonthlyResponse(summaries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
