package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Show books one artist at one venue at one point in time. Whether a
// show is "upcoming" or "past" is never stored; it is computed against
// the clock at query time.
type Show struct {
	bun.BaseModel `bun:"table:shows"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`
	ArtistID  int64     `bun:"artist_id,notnull" json:"artist_id"`
	VenueID   int64     `bun:"venue_id,notnull" json:"venue_id"`
}

// ShowFields is the field set accepted by the show creation form.
// Shows are never edited; they disappear only when a parent venue or
// artist is deleted.
type ShowFields struct {
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}
