package main

import (
	"log"

	"gromart_back_end/internal/config"
	"gromart_back_end/internal/email"
	"gromart_back_end/internal/handlers"
	"gromart_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	apiKey := config.ResendAPIKey()
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY missing — every order email will fail")
	} else {
		log.Println("✅ Email provider configured")
	}
	sender := email.NewResendSender(config.OrderEmailFrom(), config.OrderEmailTo(), apiKey)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{config.FrontendURL()},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}))
	routes.RegisterRoutes(r, handlers.NewEmailHandler(sender))

	port := config.Port()
	log.Println("🚀 GroMart server listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
