// Package artists computes the derived artist views: the index
// listing, name search, and the detail page with its past/upcoming
// partition. Classification uses one UTC clock reading per operation.
package artists

import (
	"context"
	"fmt"
	"time"

	"ms-listing/internal/models"
	"ms-listing/internal/storage"
)

type DBLayer interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	UpcomingShowCounts(ctx context.Context, now time.Time) (map[int64]int, error)
	SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error)
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
	GetShowsForArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
	DeleteArtist(ctx context.Context, id int64) (string, error)
}

type Service struct {
	DB DBLayer

	// Now is the request clock, swappable in tests.
	Now func() time.Time
}

func NewService(db DBLayer) *Service {
	return &Service{
		DB:  db,
		Now: func() time.Time { return time.Now().UTC() },
	}
}

// List returns every artist as an id/name pair in id order.
func (s *Service) List(ctx context.Context) ([]models.ArtistRef, error) {
	artists, err := s.DB.ListArtists(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([]models.ArtistRef, 0, len(artists))
	for _, artist := range artists {
		refs = append(refs, models.ArtistRef{ID: artist.ID, Name: artist.Name})
	}
	return refs, nil
}

// Search returns every artist whose name contains the term, ignoring
// case. An empty term matches everything.
func (s *Service) Search(ctx context.Context, term string) (models.SearchResults, error) {
	now := s.Now()

	artists, err := s.DB.SearchArtistsByName(ctx, term)
	if err != nil {
		return models.SearchResults{}, err
	}
	counts, err := s.DB.UpcomingShowCounts(ctx, now)
	if err != nil {
		return models.SearchResults{}, err
	}

	data := make([]models.Summary, 0, len(artists))
	for _, artist := range artists {
		data = append(data, models.Summary{
			ID:                artist.ID,
			Name:              artist.Name,
			UpcomingShowCount: counts[artist.ID],
		})
	}
	return models.SearchResults{Count: len(data), Data: data}, nil
}

// Get builds the artist detail page with shows partitioned against the
// request clock, both halves in chronological order.
func (s *Service) Get(ctx context.Context, id int64) (*models.ArtistPage, error) {
	now := s.Now()

	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.DB.GetShowsForArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past := make([]models.ArtistShow, 0)
	upcoming := make([]models.ArtistShow, 0)
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}

	return &models.ArtistPage{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             models.DecodeGenres(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		ImageLink:          artist.ImageLink,
		SeekingDescription: artist.SeekingDescription,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create lists a new artist.
func (s *Service) Create(ctx context.Context, fields models.ArtistFields) (*models.Artist, error) {
	if fields.Name == "" {
		return nil, fmt.Errorf("%w: name is required", storage.ErrValidation)
	}

	artist := &models.Artist{
		Name:               fields.Name,
		City:               fields.City,
		State:              fields.State,
		Genres:             models.EncodeGenres(fields.Genres),
		Phone:              fields.Phone,
		Website:            fields.Website,
		FacebookLink:       fields.FacebookLink,
		ImageLink:          fields.ImageLink,
		SeekingVenue:       fields.SeekingVenue,
		SeekingDescription: fields.SeekingDescription,
	}
	if err := s.DB.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Update replaces every mutable field of an existing artist.
func (s *Service) Update(ctx context.Context, id int64, fields models.ArtistFields) (*models.Artist, error) {
	if fields.Name == "" {
		return nil, fmt.Errorf("%w: name is required", storage.ErrValidation)
	}

	artist := &models.Artist{
		ID:                 id,
		Name:               fields.Name,
		City:               fields.City,
		State:              fields.State,
		Genres:             models.EncodeGenres(fields.Genres),
		Phone:              fields.Phone,
		Website:            fields.Website,
		FacebookLink:       fields.FacebookLink,
		ImageLink:          fields.ImageLink,
		SeekingVenue:       fields.SeekingVenue,
		SeekingDescription: fields.SeekingDescription,
	}
	if err := s.DB.UpdateArtist(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// Delete removes an artist and all its shows, returning the deleted
// artist's name.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.DB.DeleteArtist(ctx, id)
}
