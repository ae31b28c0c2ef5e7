package middleware

import (
	"recycling_portal/internal/domain" // User model

	"github.com/gin-gonic/gin" // Gin web framework
)

// CurrentUserKey is the gin context key holding the resolved *domain.User
const CurrentUserKey = "currentUser"

// CurrentUserResolver resolves the user the user surface acts as
type CurrentUserResolver interface {
	CurrentUser(c *gin.Context) *domain.User
}

// ResolverFunc adapts a function to CurrentUserResolver
type ResolverFunc func(c *gin.Context) *domain.User

func (f ResolverFunc) CurrentUser(c *gin.Context) *domain.User { return f(c) }

// CurrentUserMiddleware resolves the current user once per request and stores it in the context.
// A nil user is stored as well; handlers decide what absence means.
func CurrentUserMiddleware(resolver CurrentUserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CurrentUserKey, resolver.CurrentUser(c)) // Store user in context
		c.Next()                                      // Proceed to the next handler
	}
}

// CurrentUser returns the user stored by CurrentUserMiddleware, or nil
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get(CurrentUserKey) // Get user from context
	if !exists {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
