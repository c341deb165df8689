package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rht-21/intervue/pkg/model"
	"github.com/rht-21/intervue/pkg/response"
)

// SignUp registers credentials and creates the user record.
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, "Missing required fields.")
		return
	}

	ctx := c.Request.Context()
	uid := req.UID
	if uid == "" {
		uid = uuid.NewString()
	}

	if err := h.Credentials.Register(ctx, uid, req.Email, req.Password); err != nil {
		h.Logger.Sugar().Errorw("credential register failed", "email", req.Email, "err", err)
		response.Fail(c, err)
		return
	}

	if err := h.Sessions.SignUp(ctx, uid, req.Name, req.Email); err != nil {
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		response.Fail(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Account created successfully. Please sign in."})
}

// Token verifies email/password and returns a short-lived proof token. The
// token is not a session; it still has to be exchanged through SignIn.
func (h *Handler) Token(c *gin.Context) {
	var req model.TokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required.")
		return
	}

	token, err := h.Credentials.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Logger.Sugar().Warnw("authenticate failed", "email", req.Email, "err", err)
		response.Fail(c, err)
		return
	}

	response.OK(c, model.TokenRes{IDToken: token})
}

// SignIn exchanges a proof token for the session cookie.
func (h *Handler) SignIn(c *gin.Context) {
	var req model.SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and token are required.")
		return
	}

	if err := h.Sessions.SignIn(c.Request.Context(), h.Cookies(c), req.Email, req.IDToken); err != nil {
		h.Logger.Sugar().Warnw("signin failed", "email", req.Email, "err", err)
		response.Fail(c, err)
		return
	}

	response.Message(c, "Signed in successfully.")
}

// Logout clears the session cookie. Clearing an already-cleared cookie is a
// no-op success, so this always reports success.
func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.ClearSession(h.Cookies(c))
	response.Message(c, "Logged out successfully.")
}

// Me returns the current user profile
func (h *Handler) Me(c *gin.Context) {
	user := h.GetUserFromContext(c)
	if user == nil {
		response.Unauthorized(c, "Unauthorized access")
		return
	}
	response.OK(c, user)
}
