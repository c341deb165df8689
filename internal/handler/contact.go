package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"github.com/rht-21/intervue/pkg/response"
)

// Contact forwards a contact-form submission to the configured inbox.
func (h *Handler) Contact(c *gin.Context) {
	var req model.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	if err := h.Mail.SendContact(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
		h.Logger.Sugar().Errorw("contact mail dispatch failed", "err", err)
		response.Fail(c, apperr.Wrap(apperr.KindExternalService, "Failed to send message", err))
		return
	}

	response.Message(c, "Message sent successfully!")
}
