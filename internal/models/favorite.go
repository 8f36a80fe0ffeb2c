package models

import "time"

// Favorite relates one user to one saved movie. The (UserID, MovieID) pair is
// unique at the storage layer, so racing inserts for the same pair leave a
// single row. Rows are hard-deleted on removal; no soft-delete column, or a
// removed favorite would keep blocking the unique index.
type Favorite struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"userId" gorm:"uniqueIndex:idx_favorites_user_movie;type:varchar(36)"`
	MovieID    string    `json:"movieId" gorm:"uniqueIndex:idx_favorites_user_movie;type:varchar(36)"`
	ExternalID string    `json:"externalId" gorm:"index;type:varchar(32)"`
	Movie      Movie     `json:"movie" gorm:"foreignKey:MovieID;references:ID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
