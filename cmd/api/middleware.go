package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rht-21/intervue/internal/handler"
)

// AuthMiddleware resolves the session cookie into a user record. Anything
// unresolvable (no cookie, bad signature, expired artifact, deleted user)
// is a 401.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := app.Handler.Sessions.ResolveSession(c.Request.Context(), app.Handler.Cookies(c))
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
			return
		}

		handler.SetUser(c, user)
		c.Next()
	}
}
