// Package db holds the artist queries.
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

// ListArtists fetches every artist in ascending id order.
func (d *DB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return artists, nil
}

// UpcomingShowCounts buckets shows strictly later than now by artist in
// a single grouped pass.
func (d *DB) UpcomingShowCounts(ctx context.Context, now time.Time) (map[int64]int, error) {
	var rows []struct {
		ArtistID int64 `bun:"artist_id"`
		Count    int   `bun:"count"`
	}
	err := d.Bun.NewSelect().
		Table("shows").
		ColumnExpr("artist_id").
		ColumnExpr("COUNT(*) AS count").
		Where("start_time > ?", now).
		Group("artist_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, storage.MapError(err)
	}

	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.ArtistID] = row.Count
	}
	return counts, nil
}

// SearchArtistsByName matches artists whose lowercased name contains
// the lowercased term. An empty term matches every artist.
func (d *DB) SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return artists, nil
}

// GetArtistByID fetches one artist or storage.ErrNotFound.
func (d *DB) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return &artist, nil
}

// GetShowsForArtist fetches the artist's shows joined with each venue's
// display fields, in chronological order.
func (d *DB) GetShowsForArtist(ctx context.Context, artistID int64) ([]models.ArtistShow, error) {
	var shows []models.ArtistShow
	err := d.Bun.NewSelect().
		Table("shows").
		ColumnExpr("shows.venue_id AS venue_id").
		ColumnExpr("venues.name AS venue_name").
		ColumnExpr("venues.image_link AS venue_image_link").
		ColumnExpr("shows.start_time AS start_time").
		Join("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		OrderExpr("shows.start_time ASC").
		Scan(ctx, &shows)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return shows, nil
}

// CreateArtist inserts a new artist and fills in the generated id.
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	_, err := d.Bun.NewInsert().
		Model(artist).
		Exec(ctx)
	return storage.MapError(err)
}

// UpdateArtist replaces every mutable column of an existing artist.
func (d *DB) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	res, err := d.Bun.NewUpdate().
		Model(artist).
		Column("name", "city", "state", "genres", "phone", "website",
			"facebook_link", "image_link", "seeking_venue",
			"seeking_description").
		Where("id = ?", artist.ID).
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

// DeleteArtist removes an artist and returns its name. Owned shows go
// with it via the cascade constraint.
func (d *DB) DeleteArtist(ctx context.Context, id int64) (string, error) {
	var name string
	err := d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		artist := new(models.Artist)
		if err := tx.NewSelect().
			Model(artist).
			Column("name").
			Where("id = ?", id).
			Limit(1).
			Scan(ctx); err != nil {
			return err
		}
		name = artist.Name

		_, err := tx.NewDelete().
			Model((*models.Artist)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		return err
	})
	if err != nil {
		return "", storage.MapError(err)
	}
	return name, nil
}
