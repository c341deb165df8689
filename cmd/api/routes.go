package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := strings.Join(app.Config.GetCORSOrigins(), ", ")
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", trusted)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/signup", app.Handler.SignUp)
		v1.POST("/auth/token", app.Handler.Token)
		v1.POST("/auth/signin", app.Handler.SignIn)
		v1.POST("/auth/logout", app.Handler.Logout)
		v1.POST("/auth/forgot-password", app.Handler.ForgotPassword)
		v1.POST("/auth/verify-reset-code", app.Handler.VerifyResetCode)
		v1.POST("/auth/reset-password", app.Handler.ResetPassword)
		v1.POST("/contact", app.Handler.Contact)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)

		// interview routes
		protected.GET("/interviews", app.Handler.ListInterviews)
		protected.GET("/interviews/latest", app.Handler.LatestInterviews)
		protected.GET("/interviews/:id", app.Handler.GetInterview)

		// feedback routes
		protected.POST("/feedback", app.Handler.CreateFeedback)
		protected.GET("/feedback", app.Handler.GetFeedback)
	}

	return r
}
