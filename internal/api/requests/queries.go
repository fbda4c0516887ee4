package requests

import "gorm.io/gorm"

func requestJoinQuery(db *gorm.DB) *gorm.DB {
	return db.Table("purchase_requests").
		Select("purchase_requests.*, artworks.title AS artwork_title, artworks.price_cents AS artwork_price_cents, artworks.currency AS artwork_currency, artists.stage_name").
		Joins("JOIN artworks ON artworks.id = purchase_requests.artwork_id").
		Joins("JOIN artists ON artists.id = artworks.artist_id")
}
