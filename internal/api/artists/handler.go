package artists

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

// ArtistView joins the profile with the safe columns of the owning
// account, mirroring what the gallery pages show next to an artwork.
type ArtistView struct {
	ID        int64  `json:"id"`
	StageName string `json:"stage_name"`
	Bio       string `json:"bio"`
	Country   string `json:"country"`
	City      string `json:"city"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
	Website   string `json:"website"`
	Instagram string `json:"instagram"`
	Verified  bool   `json:"verified"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

func ListArtists(c *gin.Context) {
	var views []ArtistView
	err := artistJoinQuery(database.DB).Scan(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, views)
}

func GetArtist(c *gin.Context) {
	var view ArtistView
	res := artistJoinQuery(database.DB).
		Where("artists.id = ?", c.Param("id")).
		Scan(&view)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

func GetCurrentArtist(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var view ArtistView
	res := artistJoinQuery(database.DB).
		Where("artists.id = ?", userID).
		Scan(&view)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist profile"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

type profileInput struct {
	StageName string `json:"stage_name"`
	Bio       string `json:"bio"`
	Country   string `json:"country"`
	City      string `json:"city"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
	Website   string `json:"website"`
	Instagram string `json:"instagram"`
	Verified  *bool  `json:"verified"`
}

func applyProfileUpdates(in profileInput, admin bool) map[string]interface{} {
	updates := map[string]interface{}{
		"stage_name": in.StageName,
		"bio":        in.Bio,
		"country":    in.Country,
		"city":       in.City,
		"birth_year": in.BirthYear,
		"death_year": in.DeathYear,
		"website":    in.Website,
		"instagram":  in.Instagram,
	}
	// The verified badge is an admin call, silently dropped for everyone else.
	if admin && in.Verified != nil {
		updates["verified"] = *in.Verified
	}
	return updates
}

func UpdateCurrentArtist(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&artists.ArtistProfile{}).
		Where("id = ?", userID).
		Updates(applyProfileUpdates(input, c.GetString("role") == users.RoleAdmin))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist profile"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist profile updated"})
}

func UpdateArtist(c *gin.Context) {
	var profile artists.ArtistProfile
	if err := database.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	callerID := c.GetInt64("user_id")
	role := c.GetString("role")
	if !access.OwnerOrAdmin(profile.ID, callerID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to edit this profile"})
		return
	}

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&profile).
		Updates(applyProfileUpdates(input, role == users.RoleAdmin)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artist profile updated"})
}

func ListArtistArtworks(c *gin.Context) {
	var artworks []works.Artwork
	err := database.DB.
		Where("artist_id = ?", c.Param("id")).
		Order("created_at DESC").
		Find(&artworks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, artworks)
}
