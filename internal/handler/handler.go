package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rht-21/intervue/internal/feedback"
	"github.com/rht-21/intervue/internal/interview"
	"github.com/rht-21/intervue/internal/reset"
	"github.com/rht-21/intervue/internal/session"
	"github.com/rht-21/intervue/pkg/model"
	"go.uber.org/zap"
)

// ContactDispatcher forwards contact-form submissions.
type ContactDispatcher interface {
	SendContact(ctx context.Context, name, replyTo, message string) error
}

// ProofIssuer authenticates email/password pairs into proof tokens.
type ProofIssuer interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, uid, email, password string) error
}

type Handler struct {
	Logger        *zap.Logger
	Sessions      *session.Service
	Credentials   ProofIssuer
	Reset         *reset.Service
	Directory     *interview.Directory
	Feedback      *feedback.Engine
	Mail          ContactDispatcher
	SecureCookies bool
}

const ctxUserKey = "user"

// Cookies builds the per-request session cookie capability.
func (h *Handler) Cookies(c *gin.Context) session.Writer {
	return &cookieWriter{c: c, secure: h.SecureCookies}
}

// SetUser stores the resolved user on the request context.
func SetUser(c *gin.Context, u *model.User) {
	c.Set(ctxUserKey, u)
}

// GetUserFromContext retrieves the current user from the gin context
func (h *Handler) GetUserFromContext(c *gin.Context) *model.User {
	contextUser, exists := c.Get(ctxUserKey)
	if !exists {
		return nil
	}
	user, ok := contextUser.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// cookieWriter adapts the gin context to the session writer capability with
// the fixed cookie attributes: httpOnly, path "/", sameSite lax, secure only
// in production builds.
type cookieWriter struct {
	c      *gin.Context
	secure bool
}

func (w *cookieWriter) Write(value string, maxAge int) {
	// net/http only serializes Max-Age=0 for a negative MaxAge, so a
	// zero max-age (clear) has to go out as -1
	if maxAge <= 0 {
		maxAge = -1
	}
	w.c.SetSameSite(http.SameSiteLaxMode)
	w.c.SetCookie(session.CookieName, value, maxAge, "/", "", w.secure, true)
}

func (w *cookieWriter) Read() (string, bool) {
	v, err := w.c.Cookie(session.CookieName)
	if err != nil {
		return "", false
	}
	return v, true
}
