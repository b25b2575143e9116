package venue_api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ms-listing/internal/api"
	"ms-listing/internal/logger"
	"ms-listing/internal/models"
)

// VenueService is the slice of the venues service the handlers need.
type VenueService interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.SearchResults, error)
	Get(ctx context.Context, id int64) (*models.VenuePage, error)
	Create(ctx context.Context, fields models.VenueFields) (*models.Venue, error)
	Update(ctx context.Context, id int64, fields models.VenueFields) (*models.Venue, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type Handler struct {
	VenueService VenueService
	Logger       *logger.Logger
}

type searchRequest struct {
	SearchTerm string `json:"search_term"`
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type deletedResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Routes mounts the venue endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListVenues)
	r.Post("/", h.CreateVenue)
	r.Post("/search", h.SearchVenues)
	r.Get("/{venueID}", h.GetVenue)
	r.Put("/{venueID}", h.UpdateVenue)
	r.Delete("/{venueID}", h.DeleteVenue)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.VenueService.ListAreas(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		http.Error(w, "Could not list venues", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, areas)
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.VenueService.Search(r.Context(), req.SearchTerm)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues: %v", err))
		http.Error(w, "Search failed", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	page, err := h.VenueService.Get(r.Context(), id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetVenue: venue %d: %v", id, err))
		http.Error(w, "Venue not found", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var fields models.VenueFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	venue, err := h.VenueService.Create(r.Context(), fields)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		http.Error(w, "Could not list venue: "+err.Error(), api.StatusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusCreated, createdResponse{
		ID:      venue.ID,
		Name:    venue.Name,
		Message: venue.Name + " was successfully listed!",
	})
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	var fields models.VenueFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	venue, err := h.VenueService.Update(r.Context(), id, fields)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateVenue: venue %d: %v", id, err))
		http.Error(w, "Could not edit venue: "+err.Error(), api.StatusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusOK, createdResponse{
		ID:      venue.ID,
		Name:    venue.Name,
		Message: "Edit on " + venue.Name + " was successful",
	})
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusBadRequest)
		return
	}

	name, err := h.VenueService.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteVenue: venue %d: %v", id, err))
		http.Error(w, "Could not delete venue", api.StatusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusOK, deletedResponse{
		Name:    name,
		Message: name + " successfully deleted",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error("API", fmt.Sprintf("failed to encode response: %v", err))
	}
}
