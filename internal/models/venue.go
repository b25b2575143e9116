package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	Name               string `bun:"name,notnull" json:"name"`
	City               string `bun:"city" json:"city"`
	State              string `bun:"state" json:"state"`
	Address            string `bun:"address" json:"address"`
	Genres             string `bun:"genres" json:"-"`
	Phone              string `bun:"phone,unique,nullzero" json:"phone"`
	Website            string `bun:"website" json:"website"`
	FacebookLink       string `bun:"facebook_link" json:"facebook_link"`
	ImageLink          string `bun:"image_link" json:"image_link"`
	SeekingTalent      bool   `bun:"seeking_talent,notnull" json:"seeking_talent"`
	SeekingDescription string `bun:"seeking_description" json:"seeking_description"`
}

// VenueFields is the mutable field set accepted by create and edit
// submissions. Edits replace every field here; the id and the venue's
// shows are never touched.
type VenueFields struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Genres             []string `json:"genres"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	ImageLink          string   `json:"image_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}
