package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapay/albapay/internal/binuuid"
	"github.com/albapay/albapay/internal/dashboard"
	"github.com/albapay/albapay/internal/period"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{userId}", h.get)
}

type dashboardResponse struct {
	Month          string           `json:"month"`
	ExpectedIncome int64            `json:"expectedIncome"`
	ActualIncome   int64            `json:"actualIncome"`
	Breakdown      []breakdownEntry `json:"breakdown"`
}

type breakdownEntry struct {
	Key    string `json:"key"`
	Income int64  `json:"income"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	month := r.URL.Query().Get("month")
	groupBy := dashboard.ParseGroupBy(r.URL.Query().Get("groupBy"))

	report, err := h.svc.GetDashboard(r.Context(), userID, month, groupBy)
	if err != nil {
		if errors.Is(err, binuuid.ErrInvalidFormat) || errors.Is(err, period.ErrInvalidFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(report)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(report *dashboard.Report) dashboardResponse {
	breakdown := make([]breakdownEntry, len(report.Breakdown))
	for i, e := range report.Breakdown {
		breakdown[i] = breakdownEntry{Key: e.Key, Income: e.Income}
	}

	return dashboardResponse{
		Month:          report.Month,
		ExpectedIncome: report.ExpectedIncome,
		ActualIncome:   report.ActualIncome,
		Breakdown:      breakdown,
	}
}
