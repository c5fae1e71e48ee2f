package handlers

import (
	"errors"
	"net/http"

	"nocslol/api/filters"
	submissionservice "nocslol/api/services/submission"

	"github.com/gin-gonic/gin"
)

// Submission handler for the community forms.
type SubmissionHandler struct {
	submissionService *submissionservice.SubmissionService
}

type SubmissionHandlerDependencies struct {
	SubmissionService *submissionservice.SubmissionService
}

// Create a new instance of the submission handler.
func NewSubmissionHandler(deps *SubmissionHandlerDependencies) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: deps.SubmissionService,
	}
}

// Handler for the ability annotation submissions.
func (h *SubmissionHandler) PostSubmission(c *gin.Context) {
	var form filters.SubmissionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.submissionService.SubmitAbility(c.Request.Context(), &form); err != nil {
		if errors.Is(err, submissionservice.ErrWebhookNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "submissions are disabled"})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't deliver the submission"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "submission received"})
}

// Handler for the contact form.
func (h *SubmissionHandler) PostContact(c *gin.Context) {
	var form filters.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.submissionService.SubmitContact(c.Request.Context(), &form); err != nil {
		if errors.Is(err, submissionservice.ErrWebhookNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact is disabled"})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{"error": "couldn't deliver the message"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"result": "message received"})
}
