package show_api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ms-listing/internal/api"
	"ms-listing/internal/logger"
	"ms-listing/internal/models"
)

// ShowService is the slice of the shows service the handlers need.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, fields models.ShowFields) (*models.Show, error)
}

type Handler struct {
	ShowService ShowService
	Logger      *logger.Logger
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// Routes mounts the show endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListShows)
	r.Post("/", h.CreateShow)
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := h.ShowService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListShows: %v", err))
		http.Error(w, "Could not list shows", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, listings)
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var fields models.ShowFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	show, err := h.ShowService.Create(r.Context(), fields)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		http.Error(w, "An error occurred. Show could not be listed.", api.StatusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusCreated, createdResponse{
		ID:      show.ID,
		Message: "Show was successfully listed!",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode response: %v", err))
	}
}
