package rest

import (
	"crypto/subtle"
	"os"

	"github.com/gofiber/fiber/v2"
)

func getAPIKey() string {
	key := os.Getenv("API_KEY")
	if key == "" {
		return "defaultkey"
	}
	return key
}

// RequireAPIKey returns middleware that matches the Authorization header
// against the shared secret in constant time.
func RequireAPIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if subtle.ConstantTimeCompare([]byte(auth), []byte(key)) != 1 {
			return ReturnUnauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}
