package routes

import (
	"gromart_back_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, emailHandler *handlers.EmailHandler) {
	r.GET("/", handlers.Health)
	r.POST("/api/send-email", emailHandler.SendOrderEmail)
}
