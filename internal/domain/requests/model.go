package requests

import "time"

// PurchaseRequest records a buyer's offer on an artwork. Buyer contact
// fields are a snapshot taken at submission time, not a live join against
// the users table. Requests are never deleted; terminal states stay as
// history for both sides.
type PurchaseRequest struct {
	ID          int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ArtworkID   int64 `gorm:"not null;index" json:"artwork_id"`
	BuyerUserID int64 `gorm:"not null;index" json:"buyer_user_id"`

	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	BuyerPhone string `json:"buyer_phone"`

	Message         string `json:"message"`
	OfferPriceCents *int64 `json:"offer_price_cents"`
	Currency        string `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`

	Status string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
