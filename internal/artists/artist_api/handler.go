package artist_api

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

// ArtistService is the slice of the artists service the handlers need.
type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistRef, error)
	Search(ctx context.Context, term string) (models.SearchResults, error)
	Get(ctx context.Context, id int64) (*models.ArtistPage, error)
	Create(ctx context.Context, fields models.ArtistFields) (*models.Artist, error)
	Update(ctx context.Context, id int64, fields models.ArtistFields) (*models.Artist, error)
	Delete(ctx context.Context, id int64) (string, error)
}

type Handler struct {
	ArtistService ArtistService
	Logger        *logger.Logger
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

// Routes mounts the artist endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListArtists)
	r.Post("/", h.CreateArtist)
	r.Post("/search", h.SearchArtists)
	r.Get("/{artistID}", h.GetArtist)
	r.Put("/{artistID}", h.UpdateArtist)
	r.Delete("/{artistID}", h.DeleteArtist)
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	refs, err := h.ArtistService.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListArtists: %v", err))
		http.Error(w, "Could not list artists", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, refs)
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.ArtistService.Search(r.Context(), req.SearchTerm)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists: %v", err))
		http.Error(w, "Search failed", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid artist id", http.StatusBadRequest)
		return
	}

	page, err := h.ArtistService.Get(r.Context(), id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("GetArtist: artist %d: %v", id, err))
		http.Error(w, "Artist not found", api.StatusFromError(err))
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var fields models.ArtistFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	artist, err := h.ArtistService.Create(r.Context(), fields)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		http.Error(w, "Could not list artist: "+err.Error(), api.StatusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusCreated, createdResponse{
		ID:      artist.ID,
		Name:    artist.Name,
		Message: "Artist " + artist.Name + " was successfully listed!",
	})
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid artist id", http.StatusBadRequest)
		return
	}

	var fields models.ArtistFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	artist, err := h.ArtistService.Update(r.Context(), id, fields)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("UpdateArtist: artist %d: %v", id, err))
		http.Error(w, "Could not edit artist: "+err.Error(), api.StatusFromError(err))
		return
	}

	h.writeJSON(w, http.StatusOK, createdResponse{
		ID:      artist.ID,
		Name:    artist.Name,
		Message: "Edit on " + artist.Name + " was successful",
	})
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid artist id", http.StatusBadRequest)
		return
	}

	name, err := h.ArtistService.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteArtist: artist %d: %v", id, err))
		http.Error(w, "Could not delete artist", api.StatusFromError(err))
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
