// Package db holds the show queries.
package db

import (
	"context"

	"github.com/uptrace/bun"

	"ms-listing/internal/models"
	"ms-listing/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

// ListShows fetches every show joined with both parents' display
// fields in one query, chronological order.
func (d *DB) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	var listings []models.ShowListing
	err := d.Bun.NewSelect().
		Table("shows").
		ColumnExpr("shows.venue_id AS venue_id").
		ColumnExpr("venues.name AS venue_name").
		ColumnExpr("shows.artist_id AS artist_id").
		ColumnExpr("artists.name AS artist_name").
		ColumnExpr("artists.image_link AS artist_image_link").
		ColumnExpr("shows.start_time AS start_time").
		Join("JOIN venues ON venues.id = shows.venue_id").
		Join("JOIN artists ON artists.id = shows.artist_id").
		OrderExpr("shows.start_time ASC").
		Scan(ctx, &listings)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return listings, nil
}

// GetShowByID fetches one show or storage.ErrNotFound.
func (d *DB) GetShowByID(ctx context.Context, id int64) (*models.Show, error) {
	var show models.Show
	err := d.Bun.NewSelect().
		Model(&show).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return &show, nil
}

// CreateShow inserts a new show. A dangling artist or venue reference
// surfaces as storage.ErrReferentialIntegrity with nothing written.
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	_, err := d.Bun.NewInsert().
		Model(show).
		Exec(ctx)
	return storage.MapError(err)
}
