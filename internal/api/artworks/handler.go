package artworks

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/favorites"
	"gallery-app/internal/domain/sequence"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type artworkInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Year         *int     `json:"year"`
	CategoryName string   `json:"category_name"`
	MediumName   string   `json:"medium_name"`
	WidthCM      *float64 `json:"width_cm"`
	HeightCM     *float64 `json:"height_cm"`
	DepthCM      *float64 `json:"depth_cm"`
	Framed       bool     `json:"framed"`
	EditionInfo  string   `json:"edition_info"`
	IsForSale    *bool    `json:"is_for_sale"`
	PriceCents   *int64   `json:"price_cents"`
	Currency     string   `json:"currency"`
	Status       string   `json:"status"`
	ImageURL     string   `json:"image_url"`
}

func (in artworkInput) validate() (string, bool) {
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return "Price must be a non-negative integer", false
	}
	if in.Status != "" && !works.ValidStatus(in.Status) {
		return "Invalid artwork status", false
	}
	return "", true
}

func CreateArtwork(c *gin.Context) {
	var input artworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := input.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if !access.CanCreateArtwork(c.GetString("role")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only artists can create artworks"})
		return
	}

	status := input.Status
	if status == "" {
		status = works.StatusDraft
	}
	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}
	forSale := true
	if input.IsForSale != nil {
		forSale = *input.IsForSale
	}

	var artwork works.Artwork
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := sequence.NextID(tx, "artworks")
		if err != nil {
			return err
		}

		artwork = works.Artwork{
			ID:           id,
			ArtistID:     c.GetInt64("user_id"),
			Title:        input.Title,
			Description:  input.Description,
			Year:         input.Year,
			CategoryName: input.CategoryName,
			MediumName:   input.MediumName,
			WidthCM:      input.WidthCM,
			HeightCM:     input.HeightCM,
			DepthCM:      input.DepthCM,
			Framed:       input.Framed,
			EditionInfo:  input.EditionInfo,
			IsForSale:    forSale,
			PriceCents:   input.PriceCents,
			Currency:     currency,
			Status:       status,
			ImageURL:     input.ImageURL,
		}
		return tx.Create(&artwork).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": artwork.ID})
}

// ArtworkView adds the artist identity columns the gallery grid shows.
type ArtworkView struct {
	works.Artwork
	StageName  string `json:"stage_name"`
	ArtistName string `json:"artist_name"`
}

func ListArtworks(c *gin.Context) {
	var views []ArtworkView
	err := artworkJoinQuery(database.DB).
		Order("artworks.created_at DESC").
		Scan(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, views)
}

func GetArtwork(c *gin.Context) {
	var view ArtworkView
	res := artworkJoinQuery(database.DB).
		Where("artworks.id = ?", c.Param("id")).
		Scan(&view)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func ListMyArtworks(c *gin.Context) {
	var artworks []works.Artwork
	err := database.DB.
		Where("artist_id = ?", c.GetInt64("user_id")).
		Order("created_at DESC").
		Find(&artworks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, artworks)
}

// loadOwned fetches the artwork and runs the ownership guard, writing the
// 404/403 response itself when the caller may not touch it.
func loadOwned(c *gin.Context) (works.Artwork, bool) {
	var artwork works.Artwork
	if err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return artwork, false
	}

	if !access.OwnerOrAdmin(artwork.ArtistID, c.GetInt64("user_id"), c.GetString("role")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this artwork"})
		return artwork, false
	}
	return artwork, true
}

func UpdateArtwork(c *gin.Context) {
	artwork, ok := loadOwned(c)
	if !ok {
		return
	}

	var input artworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := input.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	updates := map[string]interface{}{
		"title":         input.Title,
		"description":   input.Description,
		"year":          input.Year,
		"category_name": input.CategoryName,
		"medium_name":   input.MediumName,
		"width_cm":      input.WidthCM,
		"height_cm":     input.HeightCM,
		"depth_cm":      input.DepthCM,
		"framed":        input.Framed,
		"edition_info":  input.EditionInfo,
		"price_cents":   input.PriceCents,
		"image_url":     input.ImageURL,
	}
	if input.IsForSale != nil {
		updates["is_for_sale"] = *input.IsForSale
	}
	if input.Currency != "" {
		updates["currency"] = input.Currency
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}

	if err := database.DB.Model(&artwork).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork updated"})
}

func DeleteArtwork(c *gin.Context) {
	artwork, ok := loadOwned(c)
	if !ok {
		return
	}

	// Favorites pointing at the artwork go with it; purchase requests are
	// history and stay.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", artwork.ID).
			Delete(&favorites.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&artwork).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted"})
}
