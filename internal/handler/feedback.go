package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"github.com/rht-21/intervue/pkg/response"
)

// CreateFeedback runs the evaluation pipeline for a finished interview.
// Callers retry themselves; nothing here retries a failed generation.
func (h *Handler) CreateFeedback(c *gin.Context) {
	user := h.GetUserFromContext(c)
	if user == nil {
		response.Unauthorized(c, "Unauthorized access")
		return
	}

	var req model.CreateFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("create feedback bad request", "err", err)
		response.BadRequest(c, "Missing required fields.")
		return
	}

	id, err := h.Feedback.CreateFeedback(c.Request.Context(), req.InterviewID, user.ID, req.Transcript, req.FeedbackID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, model.CreateFeedbackRes{FeedbackID: id})
}

// GetFeedback returns the caller's feedback for one interview.
func (h *Handler) GetFeedback(c *gin.Context) {
	user := h.GetUserFromContext(c)
	if user == nil {
		response.Unauthorized(c, "Unauthorized access")
		return
	}

	interviewID := c.Query("interview_id")
	if interviewID == "" {
		response.BadRequest(c, "interview_id is required")
		return
	}

	f := h.Feedback.GetFeedbackByInterviewId(c.Request.Context(), interviewID, user.ID)
	if f == nil {
		response.Fail(c, apperr.New(apperr.KindNotFound, "Feedback not found."))
		return
	}
	response.OK(c, f)
}
