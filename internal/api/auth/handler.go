package auth

import (
	"errors"
	"net/http"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/artists"
	"gallery-app/internal/domain/sequence"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Register(c *gin.Context) {
	var input struct {
		FullName  string `json:"full_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required"`
		Role      string `json:"role"`
		StageName string `json:"stage_name"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := input.Role
	if role == "" {
		role = users.RoleVisitor
	}
	if !users.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	hash, err := users.HashPassword(input.Password, config.BCRYPT_COST)
	if err != nil {
		if errors.Is(err, users.ErrWeakPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	var user users.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := sequence.NextID(tx, "users")
		if err != nil {
			return err
		}

		user = users.User{
			ID:           id,
			FullName:     input.FullName,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         role,
			Status:       users.StatusActive,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		// Artist accounts get their profile row in the same transaction,
		// keyed by the user id.
		if role == users.RoleArtist {
			profile := artists.ArtistProfile{
				ID:        user.ID,
				StageName: input.StageName,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if database.IsDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !users.CheckPassword(user.PasswordHash, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Status != users.StatusActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		return
	}

	token, err := access.IssueToken([]byte(config.JWT_SECRET), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// VerifyToken backs session restore on the client: the middleware already
// validated the token, this just echoes the current account state.
func VerifyToken(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "user": user})
}

// Logout denylists the presented token's jti until its natural expiry.
// Tokens stay stateless; this is the only server-side session state.
func Logout(c *gin.Context) {
	jti := c.GetString("token_id")
	expiresAt, _ := c.Get("token_expires_at")
	until, ok := expiresAt.(time.Time)
	if !ok {
		until = time.Now().Add(access.TokenLifetime)
	}

	middleware.Denylist.Revoke(jti, until)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func ChangePassword(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var body struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !users.CheckPassword(user.PasswordHash, body.CurrentPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	newHash, err := users.HashPassword(body.NewPassword, config.BCRYPT_COST)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be at least 6 characters long"})
		return
	}

	if err := database.DB.Model(&user).Update("password_hash", newHash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
