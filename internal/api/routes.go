package api

import (
	"net/http" // HTTP status codes

	"recycling_portal/internal/domain"     // User model
	"recycling_portal/internal/middleware" // Current user injection
	"recycling_portal/internal/portal"     // Application state

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRoutes mounts the admin and user surfaces. Neither surface is access controlled.
func RegisterRoutes(r *gin.Engine, ctrl *portal.Controller) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Admin routes
	adminGroup := r.Group("/admin")
	adminGroup.GET("/snapshot", GetSnapshotHandler(ctrl))              // Full dataset
	adminGroup.GET("/admins", ListAdminsHandler(ctrl))                 // Admin management list
	adminGroup.POST("/metals", AddMetalHandler(ctrl))                  // Add metal
	adminGroup.PATCH("/metals/:id", UpdateMetalHandler(ctrl))          // Update metal
	adminGroup.DELETE("/metals/:id", DeleteMetalHandler(ctrl))         // Delete metal
	adminGroup.POST("/structures", AddStructureHandler(ctrl))          // Add pricing structure
	adminGroup.PATCH("/structures/:id", UpdateStructureHandler(ctrl))  // Update pricing structure
	adminGroup.DELETE("/structures/:id", DeleteStructureHandler(ctrl)) // Delete pricing structure
	adminGroup.POST("/users", AddUserHandler(ctrl))                    // Add user
	adminGroup.PATCH("/users/:id", UpdateUserHandler(ctrl))            // Update user
	adminGroup.DELETE("/users/:id", DeleteUserHandler(ctrl))           // Delete user

	// User routes, with the current user resolved per request
	userGroup := r.Group("/user")
	userGroup.Use(middleware.CurrentUserMiddleware(middleware.ResolverFunc(func(c *gin.Context) *domain.User {
		return ctrl.CurrentUser(c.Request.Context())
	})))
	userGroup.GET("/prices", GetPricesHandler(ctrl))        // Adjusted prices
	userGroup.GET("/current", GetCurrentUserHandler(ctrl))  // Current user and selector options
	userGroup.PUT("/current", SelectUserHandler(ctrl))      // Switch current user
	userGroup.PATCH("/profile", UpdateProfileHandler(ctrl)) // Self-edit name and email
}
