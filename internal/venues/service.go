// Package venues computes the derived venue views: the area listing
// grouped by (state, city), name search, and the detail page with its
// past/upcoming partition. All time classification happens against a
// single clock reading captured at the top of each operation, in UTC.
package venues

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ms-listing/internal/models"
	"ms-listing/internal/storage"
)

type DBLayer interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpcomingShowCounts(ctx context.Context, now time.Time) (map[int64]int, error)
	SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error)
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	GetShowsForVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) (string, error)
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

// ListAreas partitions every venue into (state, city) groups, ascending
// by state then city. Venues keep their id retrieval order within a
// group. Upcoming counts come from one grouped pass over shows.
func (s *Service) ListAreas(ctx context.Context) ([]models.Area, error) {
	now := s.Now()

	venues, err := s.DB.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.DB.UpcomingShowCounts(ctx, now)
	if err != nil {
		return nil, err
	}

	type areaKey struct {
		state string
		city  string
	}
	grouped := make(map[areaKey][]models.Summary)
	for _, venue := range venues {
		key := areaKey{state: venue.State, city: venue.City}
		grouped[key] = append(grouped[key], models.Summary{
			ID:                venue.ID,
			Name:              venue.Name,
			UpcomingShowCount: counts[venue.ID],
		})
	}

	keys := make([]areaKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].state != keys[j].state {
			return keys[i].state < keys[j].state
		}
		return keys[i].city < keys[j].city
	})

	areas := make([]models.Area, 0, len(keys))
	for _, key := range keys {
		areas = append(areas, models.Area{
			City:   key.city,
			State:  key.state,
			Venues: grouped[key],
		})
	}
	return areas, nil
}

// Search returns every venue whose name contains the term, ignoring
// case. An empty term matches everything.
func (s *Service) Search(ctx context.Context, term string) (models.SearchResults, error) {
	now := s.Now()

	venues, err := s.DB.SearchVenuesByName(ctx, term)
	if err != nil {
		return models.SearchResults{}, err
	}
	counts, err := s.DB.UpcomingShowCounts(ctx, now)
	if err != nil {
		return models.SearchResults{}, err
	}

	data := make([]models.Summary, 0, len(venues))
	for _, venue := range venues {
		data = append(data, models.Summary{
			ID:                venue.ID,
			Name:              venue.Name,
			UpcomingShowCount: counts[venue.ID],
		})
	}
	return models.SearchResults{Count: len(data), Data: data}, nil
}

// Get builds the venue detail page. Shows strictly later than the
// request clock land in UpcomingShows, the rest in PastShows, both in
// chronological order.
func (s *Service) Get(ctx context.Context, id int64) (*models.VenuePage, error) {
	now := s.Now()

	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.DB.GetShowsForVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	past := make([]models.VenueShow, 0)
	upcoming := make([]models.VenueShow, 0)
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}

	return &models.VenuePage{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             models.DecodeGenres(venue.Genres),
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		ImageLink:          venue.ImageLink,
		SeekingDescription: venue.SeekingDescription,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create lists a new venue.
func (s *Service) Create(ctx context.Context, fields models.VenueFields) (*models.Venue, error) {
	if fields.Name == "" {
		return nil, fmt.Errorf("%w: name is required", storage.ErrValidation)
	}

	venue := &models.Venue{
		Name:               fields.Name,
		City:               fields.City,
		State:              fields.State,
		Address:            fields.Address,
		Genres:             models.EncodeGenres(fields.Genres),
		Phone:              fields.Phone,
		Website:            fields.Website,
		FacebookLink:       fields.FacebookLink,
		ImageLink:          fields.ImageLink,
		SeekingTalent:      fields.SeekingTalent,
		SeekingDescription: fields.SeekingDescription,
	}
	if err := s.DB.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

// Update replaces every mutable field of an existing venue. The id and
// the venue's shows are untouched.
func (s *Service) Update(ctx context.Context, id int64, fields models.VenueFields) (*models.Venue, error) {
	if fields.Name == "" {
		return nil, fmt.Errorf("%w: name is required", storage.ErrValidation)
	}

	venue := &models.Venue{
		ID:                 id,
		Name:               fields.Name,
		City:               fields.City,
		State:              fields.State,
		Address:            fields.Address,
		Genres:             models.EncodeGenres(fields.Genres),
		Phone:              fields.Phone,
		Website:            fields.Website,
		FacebookLink:       fields.FacebookLink,
		ImageLink:          fields.ImageLink,
		SeekingTalent:      fields.SeekingTalent,
		SeekingDescription: fields.SeekingDescription,
	}
	if err := s.DB.UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

// Delete removes a venue and all its shows, returning the deleted
// venue's name.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	return s.DB.DeleteVenue(ctx, id)
}
