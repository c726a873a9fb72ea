package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env if present. Missing files are fine, the process environment
// wins either way.
func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — continuing with the system environment")
	} else {
		log.Println("✅ .env file loaded")
	}
}

// Getenv returns the value of key, or fallback when it is unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port is the server listen port.
func Port() string {
	return Getenv("PORT", "5000")
}

// FrontendURL is the single origin allowed by CORS.
func FrontendURL() string {
	return Getenv("FRONTEND_URL", "http://localhost:3000")
}

// ResendAPIKey is the email provider key. When empty every send fails.
func ResendAPIKey() string {
	return os.Getenv("RESEND_API_KEY")
}

// OrderEmailFrom is the fixed sender of order notifications.
func OrderEmailFrom() string {
	return Getenv("ORDER_EMAIL_FROM", "onboarding@resend.dev")
}

// OrderEmailTo is the fixed store-owner recipient of order notifications.
func OrderEmailTo() string {
	return Getenv("ORDER_EMAIL_TO", "sankar.bca.2011@gmail.com")
}

// UPIPayeeVPA is the virtual payment address encoded into UPI deep links.
func UPIPayeeVPA() string {
	return Getenv("UPI_PAYEE_VPA", "ks.sankar@ybl")
}

// UPIPayeeName is the payee display name encoded into UPI deep links.
func UPIPayeeName() string {
	return Getenv("UPI_PAYEE_NAME", "GROMART")
}

// APIBaseURL is where the storefront posts order payloads.
func APIBaseURL() string {
	return Getenv("API_BASE_URL", "http://localhost:5000")
}

// StoreBackend picks the session snapshot backend: file, redis or memory.
func StoreBackend() string {
	return Getenv("STORE_BACKEND", "file")
}

// StoreDir is the snapshot directory of the file backend.
func StoreDir() string {
	return Getenv("STORE_DIR", ".gromart")
}

// RedisAddr is the address of the redis backend.
func RedisAddr() string {
	return Getenv("REDIS_ADDR", "localhost:6379")
}
