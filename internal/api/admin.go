package api

import (
	"errors"   // Sentinel comparison
	"net/http" // HTTP status codes

	"recycling_portal/internal/domain" // Records and patches
	"recycling_portal/internal/portal" // Application state

	"github.com/gin-gonic/gin" // Gin web framework
)

// GetSnapshotHandler returns the whole dataset for the admin dashboard
func GetSnapshotHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := ctrl.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"snapshot":    snap,               // Full dataset
			"admin_count": len(snap.Admins()), // Number of admins
		})
	}
}

// ListAdminsHandler returns the users flagged as admin
func ListAdminsHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		admins := ctrl.Admins()
		resp := make([]AdminResponse, len(admins))
		// Map users to response format
		for i, u := range admins {
			resp[i] = AdminResponse{ID: u.ID, Name: u.Name, Email: u.Email}
		}
		c.JSON(http.StatusOK, gin.H{"admins": resp, "total": len(resp)})
	}
}

// AdminResponse represents an admin listed on the admin management tab
type AdminResponse struct {
	ID    string `json:"id"`    // User ID
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Contact email
}

// AddMetalHandler appends a default metal price
func AddMetalHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		m := ctrl.AddMetal(c.Request.Context())
		c.JSON(http.StatusCreated, gin.H{"metal": m})
	}
}

// UpdateMetalHandler replaces the fields present in the request body
func UpdateMetalHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.MetalPatch // Bind JSON request to struct
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Only ounce and gram are quoted
		if patch.Unit != nil && !patch.Unit.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unit must be oz or g"})
			return
		}
		m, err := ctrl.UpdateMetal(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"metal": m})
	}
}

// DeleteMetalHandler removes a metal price
func DeleteMetalHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.DeleteMetal(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

// AddStructureHandler appends a default pricing structure
func AddStructureHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := ctrl.AddStructure(c.Request.Context())
		c.JSON(http.StatusCreated, gin.H{"structure": p})
	}
}

// UpdateStructureHandler replaces the fields present in the request body
func UpdateStructureHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.StructurePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		p, err := ctrl.UpdateStructure(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"structure": p})
	}
}

// DeleteStructureHandler removes a pricing structure and unassigns it from its users
func DeleteStructureHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		cleared := ctrl.DeleteStructure(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"cleared_users": cleared})
	}
}

// AddUserHandler appends a default user
func AddUserHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := ctrl.AddUser(c.Request.Context())
		c.JSON(http.StatusCreated, gin.H{"user": u})
	}
}

// UpdateUserHandler replaces the fields present in the request body.
// "pricingStructureId": "" unassigns the user's structure.
func UpdateUserHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch domain.UserPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		u, err := ctrl.UpdateUser(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	}
}

// DeleteUserHandler removes a user
func DeleteUserHandler(ctrl *portal.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.DeleteUser(c.Request.Context(), c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}

// respondError maps controller errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portal.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, portal.ErrUnknownStructure):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Pricing structure does not exist"})
	case errors.Is(err, portal.ErrNoCurrentUser):
		c.JSON(http.StatusNotFound, gin.H{"error": "No current user"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
