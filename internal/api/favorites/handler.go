package favorites

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/favorites"
	"gallery-app/internal/domain/sequence"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddFavorite(c *gin.Context) {
	var input struct {
		ArtworkID int64 `json:"artwork_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artwork_id is required"})
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, "id = ?", input.ArtworkID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	var fav favorites.Favorite
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := sequence.NextID(tx, "favorites")
		if err != nil {
			return err
		}

		fav = favorites.Favorite{
			ID:        id,
			UserID:    c.GetInt64("user_id"),
			ArtworkID: input.ArtworkID,
		}
		return tx.Create(&fav).Error
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Artwork is already in favorites"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": fav.ID})
}

// FavoriteView carries the artwork and artist columns the favorites page
// renders alongside each bookmark.
type FavoriteView struct {
	favorites.Favorite
	Title      string `json:"title"`
	PriceCents *int64 `json:"price_cents"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	StageName  string `json:"stage_name"`
	ArtistName string `json:"artist_name"`
}

func ListMyFavorites(c *gin.Context) {
	var views []FavoriteView
	err := database.DB.Table("favorites").
		Select("favorites.*, artworks.title, artworks.price_cents, artworks.currency, artworks.status, artists.stage_name, users.full_name AS artist_name").
		Joins("JOIN artworks ON artworks.id = favorites.artwork_id").
		Joins("JOIN artists ON artists.id = artworks.artist_id").
		Joins("JOIN users ON users.id = artists.id").
		Where("favorites.user_id = ?", c.GetInt64("user_id")).
		Order("favorites.created_at DESC").
		Scan(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	c.JSON(http.StatusOK, views)
}

func CheckFavorite(c *gin.Context) {
	var count int64
	err := database.DB.Model(&favorites.Favorite{}).
		Where("user_id = ? AND artwork_id = ?", c.GetInt64("user_id"), c.Param("artwork_id")).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": count > 0})
}

// RemoveFavorite deletes by favorite id, scoped to the caller so nobody
// can clear someone else's bookmarks.
func RemoveFavorite(c *gin.Context) {
	res := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), c.GetInt64("user_id")).
		Delete(&favorites.Favorite{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

func RemoveFavoriteByArtwork(c *gin.Context) {
	res := database.DB.
		Where("artwork_id = ? AND user_id = ?", c.Param("artwork_id"), c.GetInt64("user_id")).
		Delete(&favorites.Favorite{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
