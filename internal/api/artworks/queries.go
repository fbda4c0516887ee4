package artworks

import "gorm.io/gorm"

func artworkJoinQuery(db *gorm.DB) *gorm.DB {
	return db.Table("artworks").
		Select("artworks.*, artists.stage_name, users.full_name AS artist_name").
		Joins("JOIN artists ON artists.id = artworks.artist_id").
		Joins("JOIN users ON users.id = artists.id")
}
