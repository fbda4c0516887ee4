package works

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusReserved  = "reserved"
	StatusSold      = "sold"
	StatusArchived  = "archived"
)

type Artwork struct {
	ID       int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ArtistID int64 `gorm:"not null;index" json:"artist_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Year        *int   `json:"year"`

	CategoryName string `json:"category_name"`
	MediumName   string `json:"medium_name"`

	WidthCM  *float64 `gorm:"column:width_cm" json:"width_cm"`
	HeightCM *float64 `gorm:"column:height_cm" json:"height_cm"`
	DepthCM  *float64 `gorm:"column:depth_cm" json:"depth_cm"`
	Framed   bool     `gorm:"not null;default:false" json:"framed"`

	EditionInfo string `json:"edition_info"`

	IsForSale  bool   `gorm:"not null" json:"is_for_sale"`
	PriceCents *int64 `json:"price_cents"`
	Currency   string `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`

	Status   string `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	ImageURL string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPublished, StatusReserved, StatusSold, StatusArchived:
		return true
	}
	return false
}

// Sellable reports whether the artwork may receive purchase requests:
// it must be marked for sale and currently published.
func (a Artwork) Sellable() bool {
	return a.IsForSale && a.Status == StatusPublished
}
