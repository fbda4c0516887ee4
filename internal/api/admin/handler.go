package admin

import (
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("id").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, all)
}

func UpdateUser(c *gin.Context) {
	var input struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Role     string `json:"role" binding:"required"`
		Status   string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !users.ValidRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	if input.Status != users.StatusActive && input.Status != users.StatusInactive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	res := database.DB.Model(&users.User{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"full_name": input.FullName,
			"email":     input.Email,
			"role":      input.Role,
			"status":    input.Status,
		})
	if res.Error != nil {
		if database.IsDuplicateKey(res.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// DeleteUser refuses to remove an account that still owns artworks.
// Requests and favorites referencing the account are history and are
// kept; artworks would be orphaned, so the delete is blocked instead.
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var owned int64
	if err := database.DB.Model(&works.Artwork{}).
		Where("artist_id = ?", id).
		Count(&owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check owned artworks"})
		return
	}
	if owned > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "User still owns artworks"})
		return
	}

	res := database.DB.Delete(&users.User{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
