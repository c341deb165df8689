package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rht-21/intervue/internal/interview"
	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/response"
)

// GetInterview returns one interview by id.
func (h *Handler) GetInterview(c *gin.Context) {
	iv := h.Directory.GetInterviewByID(c.Request.Context(), c.Param("id"))
	if iv == nil {
		response.Fail(c, apperr.New(apperr.KindNotFound, "Interview not found."))
		return
	}
	response.OK(c, iv)
}

// ListInterviews returns the caller's own interviews, newest first.
func (h *Handler) ListInterviews(c *gin.Context) {
	user := h.GetUserFromContext(c)
	if user == nil {
		response.Unauthorized(c, "Unauthorized access")
		return
	}

	list := h.Directory.GetInterviewsByUserId(c.Request.Context(), user.ID)
	if list == nil {
		c.JSON(http.StatusOK, response.Envelope{Success: true, Data: nil})
		return
	}
	response.OK(c, list)
}

// LatestInterviews is the discovery feed of other users' finished
// interviews.
func (h *Handler) LatestInterviews(c *gin.Context) {
	user := h.GetUserFromContext(c)
	if user == nil {
		response.Unauthorized(c, "Unauthorized access")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(interview.DefaultLatestLimit)))
	if err != nil || limit < 1 {
		response.BadRequest(c, "limit must be a positive integer")
		return
	}

	list := h.Directory.GetLatestInterviews(c.Request.Context(), user.ID, limit)
	if list == nil {
		c.JSON(http.StatusOK, response.Envelope{Success: true, Data: nil})
		return
	}
	response.OK(c, list)
}
