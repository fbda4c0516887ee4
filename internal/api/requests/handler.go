package requests

import (
	"errors"
	"net/http"

	"gallery-app/database"
	"gallery-app/internal/domain/access"
	"gallery-app/internal/domain/requests"
	"gallery-app/internal/domain/sequence"
	"gallery-app/internal/domain/users"
	"gallery-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest submits an offer on an artwork. Requires a logged-in
// buyer and a sellable (for sale, published) artwork; contact fields are
// snapshotted into the request so later profile edits don't rewrite
// history.
func CreateRequest(c *gin.Context) {
	var input struct {
		ArtworkID       int64  `json:"artwork_id" binding:"required"`
		BuyerName       string `json:"buyer_name"`
		BuyerEmail      string `json:"buyer_email"`
		BuyerPhone      string `json:"buyer_phone"`
		Message         string `json:"message"`
		OfferPriceCents *int64 `json:"offer_price_cents"`
		Currency        string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artwork_id is required"})
		return
	}
	if input.OfferPriceCents != nil && *input.OfferPriceCents < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offer must be a non-negative integer"})
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, "id = ?", input.ArtworkID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if !artwork.Sellable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork is not for sale"})
		return
	}

	buyerID := c.GetInt64("user_id")

	// Fall back to the account's own contact data when the form left the
	// snapshot fields empty.
	if input.BuyerName == "" || input.BuyerEmail == "" {
		var buyer users.User
		if err := database.DB.First(&buyer, buyerID).Error; err == nil {
			if input.BuyerName == "" {
				input.BuyerName = buyer.FullName
			}
			if input.BuyerEmail == "" {
				input.BuyerEmail = buyer.Email
			}
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	var request requests.PurchaseRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := sequence.NextID(tx, "purchase_requests")
		if err != nil {
			return err
		}

		request = requests.PurchaseRequest{
			ID:              id,
			ArtworkID:       artwork.ID,
			BuyerUserID:     buyerID,
			BuyerName:       input.BuyerName,
			BuyerEmail:      input.BuyerEmail,
			BuyerPhone:      input.BuyerPhone,
			Message:         input.Message,
			OfferPriceCents: input.OfferPriceCents,
			Currency:        currency,
			Status:          requests.StatusPending,
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": request.ID})
}

// RequestView is the request plus the artwork columns both parties see in
// their request lists.
type RequestView struct {
	requests.PurchaseRequest
	ArtworkTitle      string `json:"artwork_title"`
	ArtworkPriceCents *int64 `json:"artwork_price_cents"`
	ArtworkCurrency   string `json:"artwork_currency"`
	StageName         string `json:"stage_name"`
}

// ListMyRequests is the buyer's view of their own offers.
func ListMyRequests(c *gin.Context) {
	var views []RequestView
	err := requestJoinQuery(database.DB).
		Where("purchase_requests.buyer_user_id = ?", c.GetInt64("user_id")).
		Order("purchase_requests.created_at DESC").
		Scan(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchase requests"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// ListReceivedRequests is the artist's inbox: every request against one
// of their artworks.
func ListReceivedRequests(c *gin.Context) {
	var views []RequestView
	err := requestJoinQuery(database.DB).
		Where("artworks.artist_id = ?", c.GetInt64("user_id")).
		Order("purchase_requests.created_at DESC").
		Scan(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchase requests"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// UpdateRequestStatus moves a request through its lifecycle. Approve,
// reject and complete belong to the artwork's artist (or an admin);
// cancel belongs to the buyer. The write is conditional on the status the
// caller saw, so a terminal decision is never silently overwritten.
func UpdateRequestStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !requests.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var request requests.PurchaseRequest
	if err := database.DB.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase request not found"})
		return
	}

	var artwork works.Artwork
	if err := database.DB.First(&artwork, "id = ?", request.ArtworkID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	callerID := c.GetInt64("user_id")
	role := c.GetString("role")

	if requests.ArtistAction(input.Status) {
		if !access.OwnerOrAdmin(artwork.ArtistID, callerID, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to decide this request"})
			return
		}
	} else {
		if !access.OwnerOrAdmin(request.BuyerUserID, callerID, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the buyer can cancel this request"})
			return
		}
	}

	err := requests.UpdateStatus(database.DB, request.ID, request.Status, input.Status)
	if err != nil {
		if errors.Is(err, requests.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase request updated", "status": input.Status})
}
