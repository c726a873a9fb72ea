package handlers

import (
	"log"
	"net/http"

	"gromart_back_end/internal/email"
	"gromart_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// EmailHandler serves the single order-notification endpoint. Each request is
// handled independently; the server keeps no state between them.
type EmailHandler struct {
	Sender email.Sender
}

func NewEmailHandler(sender email.Sender) *EmailHandler {
	return &EmailHandler{Sender: sender}
}

// Health answers the liveness check.
// GET /
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend is working!"})
}

// SendOrderEmail formats the posted order into HTML and forwards it to the
// email provider. Resubmitting the same order id sends a duplicate email;
// there is no deduplication and no retry.
// POST /api/send-email
func (h *EmailHandler) SendOrderEmail(c *gin.Context) {
	var payload models.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("📦 Received order %s (%d items, %s)",
		payload.OrderID, len(payload.Items), payload.PaymentMode)

	subject := email.OrderSubject(payload.OrderID)
	body := email.OrderHTML(payload)

	if err := h.Sender.Send(c.Request.Context(), subject, body); err != nil {
		log.Printf("❌ Email sending failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	log.Printf("📧 Order email sent: %s", payload.OrderID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
