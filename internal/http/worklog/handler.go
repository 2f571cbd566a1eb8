package worklog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapay/albapay/internal/auth"
	"github.com/albapay/albapay/internal/worklog"
)

type Handler struct {
	svc *worklog.Service
}

func NewHandler(svc *worklog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/today", h.today)
}

type todayResponse struct {
	Date      string             `json:"date"`
	Schedules []scheduleResponse `json:"schedules"`
}

type scheduleResponse struct {
	WorkLogID   string `json:"workLogId"`
	StoreName   string `json:"storeName"`
	StartAt     string `json:"startAt,omitempty"`
	EndAt       string `json:"endAt,omitempty"`
	WorkMinutes int    `json:"workMinutes"`
}

func (h *Handler) today(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	list, err := h.svc.Today(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	schedules := make([]scheduleResponse, len(list.Schedules))
	for i, s := range list.Schedules {
		schedules[i] = scheduleResponse{
			WorkLogID:   s.WorkLogID,
			StoreName:   s.StoreName,
			StartAt:     s.StartAt,
			EndAt:       s.EndAt,
			WorkMinutes: s.WorkMinutes,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(todayResponse{Date: list.Date, Schedules: schedules}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
