package models

import (
	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	Name               string `bun:"name,notnull" json:"name"`
	City               string `bun:"city" json:"city"`
	State              string `bun:"state" json:"state"`
	Genres             string `bun:"genres" json:"-"`
	Phone              string `bun:"phone,unique,nullzero" json:"phone"`
	Website            string `bun:"website" json:"website"`
	FacebookLink       string `bun:"facebook_link" json:"facebook_link"`
	ImageLink          string `bun:"image_link" json:"image_link"`
	SeekingVenue       bool   `bun:"seeking_venue,notnull" json:"seeking_venue"`
	SeekingDescription string `bun:"seeking_description" json:"seeking_description"`
}

// ArtistFields is the mutable field set accepted by create and edit
// submissions, replaced wholesale on edit.
type ArtistFields struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Genres             []string `json:"genres"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	ImageLink          string   `json:"image_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}
