package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"github.com/rht-21/intervue/pkg/response"
)

func invalidResetLink() error {
	return apperr.New(apperr.KindInvalidOrExpired, "Invalid or expired reset link.")
}

// ForgotPassword starts a fresh reset request. The link itself only ever
// goes out by mail.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email is required.")
		return
	}

	msg, err := h.Reset.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("forgot password failed", "email", req.Email, "err", err)
		response.Fail(c, err)
		return
	}

	response.Message(c, msg)
}

// VerifyResetCode resolves which account a redemption link belongs to. All
// three link parameters must be present; a partial link is treated the same
// as an expired one and the client redirects back to sign-in.
func (h *Handler) VerifyResetCode(c *gin.Context) {
	var req model.VerifyResetCodeReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Mode == "" || req.OobCode == "" || req.ContinueURL == "" {
		response.Fail(c, invalidResetLink())
		return
	}

	email, err := h.Reset.VerifyResetCode(c.Request.Context(), req.OobCode)
	if err != nil {
		h.Logger.Sugar().Warnw("verify reset code failed", "err", err)
		response.Fail(c, err)
		return
	}

	response.OK(c, model.VerifyResetCodeRes{Email: email})
}

// ResetPassword redeems the code for a password change.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Password must be at least 6 characters long.")
		return
	}

	if err := h.Reset.ResetPassword(c.Request.Context(), req.OobCode, req.Password); err != nil {
		h.Logger.Sugar().Warnw("reset password failed", "err", err)
		response.Fail(c, err)
		return
	}

	response.Message(c, "Password reset successful! You can now log in.")
}
