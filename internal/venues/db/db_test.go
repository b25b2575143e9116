package db_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ms-listing/internal/models"
	"ms-listing/internal/storage"
	"ms-listing/internal/venues/db"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	// Connect to an in-memory SQLite DB for testing. A single
	// connection keeps the in-memory database and the foreign_keys
	// pragma stable across queries.
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if _, err := bunDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if _, err := bunDB.NewCreateTable().Model((*models.Venue)(nil)).Exec(ctx); err != nil {
		t.Fatalf("Failed to create venues table: %v", err)
	}
	if _, err := bunDB.NewCreateTable().Model((*models.Artist)(nil)).Exec(ctx); err != nil {
		t.Fatalf("Failed to create artists table: %v", err)
	}
	_, err = bunDB.NewCreateTable().Model((*models.Show)(nil)).
		ForeignKey(`("artist_id") REFERENCES "artists" ("id") ON DELETE CASCADE`).
		ForeignKey(`("venue_id") REFERENCES "venues" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	if err != nil {
		t.Fatalf("Failed to create shows table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func insertVenue(t *testing.T, bunDB *bun.DB, venue *models.Venue) *models.Venue {
	_, err := bunDB.NewInsert().Model(venue).Exec(context.Background())
	assert.NoError(t, err)
	return venue
}

func insertArtist(t *testing.T, bunDB *bun.DB, artist *models.Artist) *models.Artist {
	_, err := bunDB.NewInsert().Model(artist).Exec(context.Background())
	assert.NoError(t, err)
	return artist
}

func insertShow(t *testing.T, bunDB *bun.DB, artistID, venueID int64, startTime time.Time) *models.Show {
	show := &models.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}
	_, err := bunDB.NewInsert().Model(show).Exec(context.Background())
	assert.NoError(t, err)
	return show
}

func TestListVenuesInIDOrder(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	first := insertVenue(t, bunDB, &models.Venue{Name: "The Musical Hop"})
	second := insertVenue(t, bunDB, &models.Venue{Name: "The Dueling Pianos Bar"})

	venues, err := venueDB.ListVenues(context.Background())
	assert.NoError(t, err)
	assert.Len(t, venues, 2)
	assert.Equal(t, first.ID, venues[0].ID)
	assert.Equal(t, second.ID, venues[1].ID)
}

func TestUpcomingShowCounts(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	venue := insertVenue(t, bunDB, &models.Venue{Name: "The Musical Hop"})
	quiet := insertVenue(t, bunDB, &models.Venue{Name: "The Dueling Pianos Bar"})
	artist := insertArtist(t, bunDB, &models.Artist{Name: "Guns N Petals"})

	insertShow(t, bunDB, artist.ID, venue.ID, now.Add(-time.Hour))
	insertShow(t, bunDB, artist.ID, venue.ID, now.Add(time.Hour))
	insertShow(t, bunDB, artist.ID, venue.ID, now.Add(48*time.Hour))

	counts, err := venueDB.UpcomingShowCounts(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 2, counts[venue.ID])
	_, ok := counts[quiet.ID]
	assert.False(t, ok)
}

func TestUpcomingShowCountsBoundaryIsStrict(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	venue := insertVenue(t, bunDB, &models.Venue{Name: "Park Square Live Music & Coffee"})
	artist := insertArtist(t, bunDB, &models.Artist{Name: "Matt Quevedo"})
	insertShow(t, bunDB, artist.ID, venue.ID, now)

	counts, err := venueDB.UpcomingShowCounts(context.Background(), now)
	assert.NoError(t, err)
	assert.Equal(t, 0, counts[venue.ID])
}

func TestSearchVenuesCaseInsensitive(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	insertVenue(t, bunDB, &models.Venue{Name: "The Musical Hop"})
	insertVenue(t, bunDB, &models.Venue{Name: "Park Square Live Music & Coffee"})

	lower, err := venueDB.SearchVenuesByName(context.Background(), "hop")
	assert.NoError(t, err)
	assert.Len(t, lower, 1)
	assert.Equal(t, "The Musical Hop", lower[0].Name)

	upper, err := venueDB.SearchVenuesByName(context.Background(), "HOP")
	assert.NoError(t, err)
	assert.Equal(t, lower, upper)

	both, err := venueDB.SearchVenuesByName(context.Background(), "Music")
	assert.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestSearchVenuesEmptyTermMatchesAll(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	insertVenue(t, bunDB, &models.Venue{Name: "The Musical Hop"})
	insertVenue(t, bunDB, &models.Venue{Name: "The Dueling Pianos Bar"})

	venues, err := venueDB.SearchVenuesByName(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, venues, 2)
}

func TestGetVenueByID(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	venue := insertVenue(t, bunDB, &models.Venue{
		Name:  "The Musical Hop",
		City:  "San Francisco",
		State: "CA",
	})

	got, err := venueDB.GetVenueByID(context.Background(), venue.ID)
	assert.NoError(t, err)
	assert.Equal(t, "The Musical Hop", got.Name)
	assert.Equal(t, "CA", got.State)

	_, err = venueDB.GetVenueByID(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetShowsForVenueChronological(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	venue := insertVenue(t, bunDB, &models.Venue{Name: "The Musical Hop"})
	artist := insertArtist(t, bunDB, &models.Artist{
		Name:      "Guns N Petals",
		ImageLink: "https://example.com/petals.jpg",
	})

	later := time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)
	earlier := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	insertShow(t, bunDB, artist.ID, venue.ID, later)
	insertShow(t, bunDB, artist.ID, venue.ID, earlier)

	shows, err := venueDB.GetShowsForVenue(context.Background(), venue.ID)
	assert.NoError(t, err)
	assert.Len(t, shows, 2)
	assert.True(t, shows[0].StartTime.Before(shows[1].StartTime))
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, "https://example.com/petals.jpg", shows[0].ArtistImageLink)
}

func TestCreateVenueAssignsID(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	venue := &models.Venue{
		Name:   "The Musical Hop",
		Genres: models.EncodeGenres([]string{"Jazz", "Rock"}),
	}
	err := venueDB.CreateVenue(context.Background(), venue)
	assert.NoError(t, err)
	assert.NotZero(t, venue.ID)

	got, err := venueDB.GetVenueByID(context.Background(), venue.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Rock"}, models.DecodeGenres(got.Genres))
}

func TestCreateVenueDuplicatePhoneConflicts(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	err := venueDB.CreateVenue(context.Background(), &models.Venue{
		Name:  "The Musical Hop",
		Phone: "123-123-1234",
	})
	assert.NoError(t, err)

	err = venueDB.CreateVenue(context.Background(), &models.Venue{
		Name:  "The Dueling Pianos Bar",
		Phone: "123-123-1234",
	})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestUpdateVenueReplacesFields(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	venue := insertVenue(t, bunDB, &models.Venue{
		Name:  "The Musical Hop",
		City:  "San Francisco",
		State: "CA",
	})

	venue.Name = "The Musical Hop II"
	venue.City = "Oakland"
	err := venueDB.UpdateVenue(context.Background(), venue)
	assert.NoError(t, err)

	got, err := venueDB.GetVenueByID(context.Background(), venue.ID)
	assert.NoError(t, err)
	assert.Equal(t, "The Musical Hop II", got.Name)
	assert.Equal(t, "Oakland", got.City)
}

func TestUpdateVenueNotFound(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	err := venueDB.UpdateVenue(context.Background(), &models.Venue{
		ID:   9999,
		Name: "Ghost Venue",
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteVenueCascadesToShows(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	ctx := context.Background()
	venue := insertVenue(t, bunDB, &models.Venue{Name: "The Musical Hop"})
	artist := insertArtist(t, bunDB, &models.Artist{Name: "Guns N Petals"})
	insertShow(t, bunDB, artist.ID, venue.ID, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC))
	insertShow(t, bunDB, artist.ID, venue.ID, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC))

	name, err := venueDB.DeleteVenue(ctx, venue.ID)
	assert.NoError(t, err)
	assert.Equal(t, "The Musical Hop", name)

	remaining, err := bunDB.NewSelect().Model((*models.Show)(nil)).Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, remaining)

	_, err = venueDB.GetVenueByID(ctx, venue.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteVenueNotFound(t *testing.T) {
	venueDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	_, err := venueDB.DeleteVenue(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
