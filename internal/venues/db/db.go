// Package db holds the venue queries. Every method returns errors
// from the storage taxonomy; callers never see raw driver errors.
package db

import (
	"context"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"ms-listing/internal/models"
	"ms-listing/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

// ListVenues fetches every venue in ascending id order.
func (d *DB) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return venues, nil
}

// UpcomingShowCounts buckets shows strictly later than now by venue in
// a single grouped pass. Venues without upcoming shows are absent from
// the map.
func (d *DB) UpcomingShowCounts(ctx context.Context, now time.Time) (map[int64]int, error) {
	var rows []struct {
		VenueID int64 `bun:"venue_id"`
		Count   int   `bun:"count"`
	}
	err := d.Bun.NewSelect().
		Table("shows").
		ColumnExpr("venue_id").
		ColumnExpr("COUNT(*) AS count").
		Where("start_time > ?", now).
		Group("venue_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, storage.MapError(err)
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.VenueID] = row.Count
	}
	return counts, nil
}

// SearchVenuesByName matches venues whose lowercased name contains the
// lowercased term. An empty term matches every venue.
func (d *DB) SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return venues, nil
}

// GetVenueByID fetches one venue or storage.ErrNotFound.
func (d *DB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return &venue, nil
}

// GetShowsForVenue fetches the venue's shows joined with each artist's
// display fields, in chronological order.
func (d *DB) GetShowsForVenue(ctx context.Context, venueID int64) ([]models.VenueShow, error) {
	var shows []models.VenueShow
	err := d.Bun.NewSelect().
		Table("shows").
		ColumnExpr("shows.artist_id AS artist_id").
		ColumnExpr("artists.name AS artist_name").
		ColumnExpr("artists.image_link AS artist_image_link").
		ColumnExpr("shows.start_time AS start_time").
		Join("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		OrderExpr("shows.start_time ASC").
		Scan(ctx, &shows)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return shows, nil
}

// CreateVenue inserts a new venue and fills in the generated id.
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	_, err := d.Bun.NewInsert().
		Model(venue).
		Exec(ctx)
	return storage.MapError(err)
}

// UpdateVenue replaces every mutable column of an existing venue.
func (d *DB) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	res, err := d.Bun.NewUpdate().
		Model(venue).
		Column("name", "city", "state", "address", "genres", "phone",
			"website", "facebook_link", "image_link", "seeking_talent",
			"seeking_description").
		Where("id = ?", venue.ID).
		Exec(ctx)
	if err != nil {
		return storage.MapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteVenue removes a venue and returns its name for confirmation
// messaging. Owned shows go with it via the cascade constraint.
func (d *DB) DeleteVenue(ctx context.Context, id int64) (string, error) {
	var name string
	err := d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		venue := new(models.Venue)
		if err := tx.NewSelect().
			Model(venue).
			Column("name").
			Where("id = ?", id).
			Limit(1).
			Scan(ctx); err != nil {
			return err
		}
		name = venue.Name

		_, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
	if err != nil {
		return "", storage.MapError(err)
	}
	return name, nil
}
