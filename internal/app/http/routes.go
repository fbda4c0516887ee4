package routes

import (
	adminapi "gallery-app/internal/api/admin"
	artistsapi "gallery-app/internal/api/artists"
	artworksapi "gallery-app/internal/api/artworks"
	authapi "gallery-app/internal/api/auth"
	favoritesapi "gallery-app/internal/api/favorites"
	requestsapi "gallery-app/internal/api/requests"
	usersapi "gallery-app/internal/api/users"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public reads
	r.GET("/artists", artistsapi.ListArtists)
	r.GET("/artists/:id", artistsapi.GetArtist)
	r.GET("/artists/:id/artworks", artistsapi.ListArtistArtworks)
	r.GET("/artworks", artworksapi.ListArtworks)
	r.GET("/artworks/:id", artworksapi.GetArtwork)
	r.GET("/users/:id", usersapi.GetUser)

	// Public writes pass through the HTML sanitizer
	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/verify-token", authapi.VerifyToken)
	auth.POST("/logout", authapi.Logout)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/me", usersapi.GetCurrentUser)
	auth.PUT("/me", usersapi.UpdateCurrentUser)
	auth.GET("/me/artist", artistsapi.GetCurrentArtist)
	auth.PUT("/me/artist", artistsapi.UpdateCurrentArtist)
	auth.PUT("/artists/:id", artistsapi.UpdateArtist)

	auth.GET("/me/artworks", artworksapi.ListMyArtworks)
	auth.PUT("/artworks/:id", artworksapi.UpdateArtwork)
	auth.DELETE("/artworks/:id", artworksapi.DeleteArtwork)

	auth.POST("/favorites", favoritesapi.AddFavorite)
	auth.GET("/me/favorites", favoritesapi.ListMyFavorites)
	auth.GET("/favorites/check/:artwork_id", favoritesapi.CheckFavorite)
	auth.DELETE("/favorites/:id", favoritesapi.RemoveFavorite)
	auth.DELETE("/favorites/artwork/:artwork_id", favoritesapi.RemoveFavoriteByArtwork)

	auth.GET("/me/purchase-requests", requestsapi.ListMyRequests)
	auth.GET("/me/requests-received", requestsapi.ListReceivedRequests)
	auth.PUT("/purchase-requests/:id", requestsapi.UpdateRequestStatus)

	// Creation routes with extra guards
	authSanitized := auth.Group("/")
	authSanitized.Use(middleware.SanitizeInputMiddleware())
	authSanitized.POST("/purchase-requests", requestsapi.CreateRequest)

	artistOnly := auth.Group("/")
	artistOnly.Use(middleware.RequireAnyRole(users.RoleArtist, users.RoleAdmin))
	artistOnly.POST("/artworks", artworksapi.CreateArtwork)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/users", adminapi.ListAllUsers)
	admin.PUT("/users/:id", adminapi.UpdateUser)
	admin.DELETE("/users/:id", adminapi.DeleteUser)
}
