// Package shows lists bookings and records new ones. Shows are never
// edited or deleted here; they only disappear when a parent venue or
// artist is removed.
package shows

import (
	"context"
	"fmt"

	"ms-listing/internal/models"
	"ms-listing/internal/storage"
)

type DBLayer interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateShow(ctx context.Context, show *models.Show) error
}

type Service struct {
	DB DBLayer
}

func NewService(db DBLayer) *Service {
	return &Service{DB: db}
}

// List returns every show with both parents' display fields attached.
func (s *Service) List(ctx context.Context) ([]models.ShowListing, error) {
	return s.DB.ListShows(ctx)
}

// Create books an artist at a venue. Both ids must reference existing
// rows and the start time is required.
func (s *Service) Create(ctx context.Context, fields models.ShowFields) (*models.Show, error) {
	if fields.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", storage.ErrValidation)
	}
	if fields.ArtistID == 0 || fields.VenueID == 0 {
		return nil, fmt.Errorf("%w: artist_id and venue_id are required", storage.ErrValidation)
	}

	show := &models.Show{
		ArtistID:  fields.ArtistID,
		VenueID:   fields.VenueID,
		StartTime: fields.StartTime.UTC(),
	}
	if err := s.DB.CreateShow(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}
