package database

import (
	"fmt"
	"log"
	"os"

	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/favorites"
	"gallery-app/internal/domain/requests"
	"gallery-app/internal/domain/sequence"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// CountedTables are the entity tables whose primary keys come from the
// sequence allocator.
var CountedTables = []string{"users", "artists", "artworks", "favorites", "purchase_requests"}

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate creates the schema and seeds the id counters. Split out of
// InitDB so tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&artists.ArtistProfile{},
		&works.Artwork{},
		&favorites.Favorite{},
		&requests.PurchaseRequest{},
		&sequence.Counter{},
	); err != nil {
		return err
	}
	return sequence.Seed(db, CountedTables...)
}
