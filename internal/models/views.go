package models

import "time"

// Derived view shapes returned by the listing services. These are the
// structures the API encodes directly, so their json tags are the wire
// contract.

// Summary is the compact entry shared by the area listing and both
// search responses.
type Summary struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	UpcomingShowCount int    `json:"num_upcoming_shows"`
}

// Area groups the venues of one (state, city) pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResults holds every name match for a search term. Count always
// equals len(Data).
type SearchResults struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// ArtistRef is the minimal entry on the artist index page.
type ArtistRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VenueShow is a show as listed on a venue page, carrying the artist's
// display fields.
type VenueShow struct {
	ArtistID        int64     `bun:"artist_id" json:"artist_id"`
	ArtistName      string    `bun:"artist_name" json:"artist_name"`
	ArtistImageLink string    `bun:"artist_image_link" json:"artist_image_link"`
	StartTime       time.Time `bun:"start_time" json:"start_time"`
}

// ArtistShow is a show as listed on an artist page, carrying the
// venue's display fields.
type ArtistShow struct {
	VenueID        int64     `bun:"venue_id" json:"venue_id"`
	VenueName      string    `bun:"venue_name" json:"venue_name"`
	VenueImageLink string    `bun:"venue_image_link" json:"venue_image_link"`
	StartTime      time.Time `bun:"start_time" json:"start_time"`
}

// ShowListing is one row of the flat show index, a show joined with
// both parents' display fields.
type ShowListing struct {
	VenueID         int64     `bun:"venue_id" json:"venue_id"`
	VenueName       string    `bun:"venue_name" json:"venue_name"`
	ArtistID        int64     `bun:"artist_id" json:"artist_id"`
	ArtistName      string    `bun:"artist_name" json:"artist_name"`
	ArtistImageLink string    `bun:"artist_image_link" json:"artist_image_link"`
	StartTime       time.Time `bun:"start_time" json:"start_time"`
}

// VenuePage is the full venue detail view with its shows partitioned
// relative to the request clock.
type VenuePage struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Address            string      `json:"address"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingTalent      bool        `json:"seeking_talent"`
	ImageLink          string      `json:"image_link"`
	SeekingDescription string      `json:"seeking_description"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistPage is the full artist detail view.
type ArtistPage struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingVenue       bool         `json:"seeking_venue"`
	ImageLink          string       `json:"image_link"`
	SeekingDescription string       `json:"seeking_description"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
