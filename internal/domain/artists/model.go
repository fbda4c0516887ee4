package artists

import "time"

// ArtistProfile is the 1:1 extension of a users.User with role "artist".
// The primary key is the user id itself, never allocated separately.
type ArtistProfile struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	StageName string `json:"stage_name"`
	Bio       string `json:"bio"`
	Country   string `json:"country"`
	City      string `json:"city"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
	Website   string `json:"website"`
	Instagram string `json:"instagram"`
	Verified  bool   `gorm:"not null;default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (ArtistProfile) TableName() string {
	return "artists"
}
