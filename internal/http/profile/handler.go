package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapay/albapay/internal/binuuid"
	"github.com/albapay/albapay/internal/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{userId}", h.get)
	r.Put("/{userId}", h.update)
}

type profileResponse struct {
	UserID         string  `json:"userId"`
	UserName       string  `json:"userName"`
	UserBirth      string  `json:"userBirth,omitempty"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender,omitempty"`
	ProfileImage   string  `json:"profileImage,omitempty"`
	TotalWorkCount int     `json:"totalWorkCount"`
	TrustScore     float64 `json:"trustScore"`
}

func toResponse(p *profile.Profile) profileResponse {
	return profileResponse{
		UserID:         p.UserID,
		UserName:       p.UserName,
		UserBirth:      p.UserBirth,
		Age:            p.Age,
		Gender:         p.Gender,
		ProfileImage:   p.ProfileImage,
		TotalWorkCount: p.TotalWorkCount,
		TrustScore:     p.TrustScore,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProfileRequest struct {
	UserName     *string `json:"userName,omitempty"`
	UserBirth    *string `json:"userBirth,omitempty"` // YYYY-MM-DD
	Gender       *string `json:"gender,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := profile.UpdateParams{
		UserName:     req.UserName,
		Gender:       req.Gender,
		ProfileImage: req.ProfileImage,
	}

	if req.UserBirth != nil {
		birth, err := time.Parse(time.DateOnly, *req.UserBirth)
		if err != nil {
			http.Error(w, "userBirth must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		params.UserBirth = &birth
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "userId"), params)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, binuuid.ErrInvalidFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, profile.ErrNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
