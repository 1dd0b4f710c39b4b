// Reply HTTP handler.
//
// POST /api/send-reply renders the fixed reply template and dispatches it
// through the configured email provider. Delivery failures surface as a 502
// with the delivery_failed code; the matched submission keeps its status in
// that case.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mechgenz/contact-backend/internal/email"
	"github.com/mechgenz/contact-backend/internal/services"
)

// SendReplyRequest is the JSON payload for dispatching a reply.
type SendReplyRequest struct {
	// ToEmail is the recipient address.
	ToEmail string `json:"to_email" binding:"required" example:"customer@example.com"`
	// ToName is the recipient display name used in the greeting.
	ToName string `json:"to_name" binding:"required" example:"Jane Doe"`
	// ReplyMessage is the reply body text.
	ReplyMessage string `json:"reply_message" binding:"required"`
	// OriginalMessage, when present, is quoted below the reply.
	OriginalMessage string `json:"original_message"`
}

// SendReplyResponse acknowledges a dispatched reply.
type SendReplyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Reply sent successfully"`
	// EmailID is the provider-assigned message identifier.
	EmailID string `json:"email_id,omitempty"`
	// SubmissionID identifies the submission marked replied, when one matched.
	SubmissionID string `json:"submission_id,omitempty"`
}

// SendReply godoc
// @ID          sendReply
// @Summary     Send a reply email
// @Description Renders a fixed HTML and plain-text reply template, sends it through the email provider, and marks the most recent submission with a matching email address as "replied". A delivery failure leaves submission state untouched.
// @Tags        Admin
// @Accept      json
// @Produce     json
//
// @Param       X-Admin-Key  header  string  false "Admin API key (when configured)"
// @Param       body         body    handlers.SendReplyRequest  true  "Reply payload"
//
// @Success     200  {object} handlers.SendReplyResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing required field"
// @Failure     401  {object} handlers.ErrorResponse "Unauthorized"
// @Failure     502  {object} handlers.ErrorResponse "Email provider rejected the message"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /send-reply [post]
func (h *Handlers) SendReply(c *gin.Context) {
	var req SendReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"to_email, to_name and reply_message are required")
		return
	}

	receipt, err := h.replySvc.Send(c.Request.Context(), services.ReplyRequest{
		ToEmail:         strings.TrimSpace(req.ToEmail),
		ToName:          strings.TrimSpace(req.ToName),
		ReplyMessage:    req.ReplyMessage,
		OriginalMessage: req.OriginalMessage,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingReplyField):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, email.ErrNotConfigured):
			fail(c, http.StatusBadGateway, ErrCodeDeliveryFailed, "email delivery is not configured")
		case errors.Is(err, services.ErrDeliveryFailed):
			fail(c, http.StatusBadGateway, ErrCodeDeliveryFailed, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, SendReplyResponse{
		Success:      true,
		Message:      "Reply sent successfully",
		EmailID:      receipt.EmailID,
		SubmissionID: receipt.SubmissionID,
	})
}
