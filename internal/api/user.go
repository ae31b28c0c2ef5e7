package api

import (
	"net/http" // HTTP status codes

	"recycling_portal/internal/middleware" // Current user from context
	"recycling_portal/internal/portal"     // Application state

	"github.com/gin-gonic/gin" // Gin web framework
)

// SelectUserRequest represents a current-user switch
type SelectUserRequest struct {
	ID string `json:"id"` // Empty clears the choice
}

// ProfileRequest represents a self-edit of the current user
type ProfileRequest struct {
	Name  *string `json:"name"`  // New display name
	Email *string `json:"email"` // New contact email
}

// GetPricesHandler returns the current user's adjusted price table
func GetPricesHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ctrl.Prices(c.Request.Context()))
	}
}

// GetCurrentUserHandler returns the current user and the users the selector offers
func GetCurrentUserHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":       middleware.CurrentUser(c), // Nil when none resolves
			"selectable": ctrl.SelectableUsers(),    // Non-admin users
		})
	}
}

// SelectUserHandler switches the current user
func SelectUserHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		u, err := ctrl.SelectUser(c.Request.Context(), req.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// UpdateProfileHandler lets the current user edit their name and email
func UpdateProfileHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		u, err := ctrl.UpdateProfile(c.Request.Context(), req.Name, req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}
