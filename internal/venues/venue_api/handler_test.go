package venue_api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"ms-listing/internal/logger"
	"ms-listing/internal/models"
	"ms-listing/internal/storage"
	"ms-listing/internal/venues/venue_api"
)

// MockVenueService simulates the venues service with in-memory data.
type MockVenueService struct {
	venues map[int64]*models.VenuePage
	nextID int64
}

func NewMockVenueService() *MockVenueService {
	return &MockVenueService{
		venues: map[int64]*models.VenuePage{
			1: {
				ID:     1,
				Name:   "The Musical Hop",
				City:   "San Francisco",
				State:  "CA",
				Genres: []string{"Jazz", "Folk"},
			},
		},
		nextID: 2,
	}
}

func (m *MockVenueService) ListAreas(ctx context.Context) ([]models.Area, error) {
	var summaries []models.Summary
	for _, v := range m.venues {
		summaries = append(summaries, models.Summary{ID: v.ID, Name: v.Name})
	}
	return []models.Area{{City: "San Francisco", State: "CA", Venues: summaries}}, nil
}

func (m *MockVenueService) Search(ctx context.Context, term string) (models.SearchResults, error) {
	data := make([]models.Summary, 0)
	for _, v := range m.venues {
		data = append(data, models.Summary{ID: v.ID, Name: v.Name})
	}
	return models.SearchResults{Count: len(data), Data: data}, nil
}

func (m *MockVenueService) Get(ctx context.Context, id int64) (*models.VenuePage, error) {
	page, ok := m.venues[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return page, nil
}

func (m *MockVenueService) Create(ctx context.Context, fields models.VenueFields) (*models.Venue, error) {
	if fields.Name == "" {
		return nil, fmt.Errorf("%w: name is required", storage.ErrValidation)
	}
	id := m.nextID
	m.nextID++
	m.venues[id] = &models.VenuePage{ID: id, Name: fields.Name, Genres: fields.Genres}
	return &models.Venue{ID: id, Name: fields.Name}, nil
}

func (m *MockVenueService) Update(ctx context.Context, id int64, fields models.VenueFields) (*models.Venue, error) {
	if _, ok := m.venues[id]; !ok {
		return nil, storage.ErrNotFound
	}
	m.venues[id].Name = fields.Name
	return &models.Venue{ID: id, Name: fields.Name}, nil
}

func (m *MockVenueService) Delete(ctx context.Context, id int64) (string, error) {
	page, ok := m.venues[id]
	if !ok {
		return "", storage.ErrNotFound
	}
	delete(m.venues, id)
	return page.Name, nil
}

func setupRouter(svc venue_api.VenueService) *chi.Mux {
	handler := &venue_api.Handler{
		VenueService: svc,
		Logger:       logger.NewLogger(),
	}
	r := chi.NewRouter()
	r.Route("/venues", handler.Routes)
	return r
}

func TestGetVenueReturnsPage(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	req := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var page models.VenuePage
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&page))
	assert.Equal(t, "The Musical Hop", page.Name)
	assert.Equal(t, []string{"Jazz", "Folk"}, page.Genres)
}

func TestGetVenueNotFound(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	req := httptest.NewRequest(http.MethodGet, "/venues/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVenueBadID(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	req := httptest.NewRequest(http.MethodGet, "/venues/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateVenue(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	body, _ := json.Marshal(models.VenueFields{
		Name:   "Park Square Live Music & Coffee",
		Genres: []string{"Rock n Roll", "Jazz"},
	})
	req := httptest.NewRequest(http.MethodPost, "/venues", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(2), resp.ID)
	assert.Contains(t, resp.Message, "successfully listed")
}

func TestCreateVenueMissingName(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	req := httptest.NewRequest(http.MethodPost, "/venues", bytes.NewReader([]byte(`{"city":"Phoenix"}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchVenues(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	req := httptest.NewRequest(http.MethodPost, "/venues/search", bytes.NewReader([]byte(`{"search_term":"hop"}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var results models.SearchResults
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&results))
	assert.Equal(t, 1, results.Count)
}

func TestDeleteVenueReturnsName(t *testing.T) {
	r := setupRouter(NewMockVenueService())

	req := httptest.NewRequest(http.MethodDelete, "/venues/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "The Musical Hop", resp.Name)
}
