package middleware

import (
	"crypto/subtle"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

// ValidateWebhookToken validates that the fulfillment request carries the
// shared token the dialogue platform is configured to send in a header
func ValidateWebhookToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get token from header
		requestToken := c.Get("X-Webhook-Token")
		if requestToken == "" {
			return c.Status(401).JSON(fiber.Map{
				"error": "Missing webhook token",
			})
		}

		// Get expected token from environment
		expectedToken := os.Getenv("WEBHOOK_TOKEN")
		if expectedToken == "" {
			// Log error but don't expose to client
			fmt.Println("ERROR: WEBHOOK_TOKEN not set")
			return c.Status(500).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		}

		// Compare tokens in constant time
		if subtle.ConstantTimeCompare([]byte(requestToken), []byte(expectedToken)) != 1 {
			return c.Status(401).JSON(fiber.Map{
				"error": "Invalid webhook token",
			})
		}

		return c.Next()
	}
}
