package models

import "time"

// Movie is the locally cached copy of an external catalog entry.
// It is created or refreshed whenever a movie is referenced by external id;
// repeated upserts converge to the provider's latest data.
type Movie struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ExternalID string    `json:"externalId" gorm:"uniqueIndex;type:varchar(32)" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	Year       string    `json:"year"`
	Poster     string    `json:"poster"` // empty when the provider has no poster
	Actors     string    `json:"actors"`
	Genre      string    `json:"genre"`
	Type       string    `json:"type"`
	Duration   string    `json:"duration"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
