package favorites

import "time"

// Favorite bookmarks an artwork for a user. The (user_id, artwork_id)
// pair is unique; a second insert for the same pair is a conflict.
type Favorite struct {
	ID        int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_favorites_user_artwork,priority:1" json:"user_id"`
	ArtworkID int64 `gorm:"not null;uniqueIndex:idx_favorites_user_artwork,priority:2" json:"artwork_id"`

	CreatedAt time.Time `json:"created_at"`
}
