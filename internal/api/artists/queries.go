package artists

import "gorm.io/gorm"

func artistJoinQuery(db *gorm.DB) *gorm.DB {
	return db.Table("artists").
		Select("artists.*, users.full_name, users.email, users.status").
		Joins("JOIN users ON users.id = artists.id")
}
