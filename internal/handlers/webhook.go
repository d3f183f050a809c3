package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/dialogflow"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/services"
)

// WebhookHandler handles fulfillment calls from the dialogue platform
type WebhookHandler struct {
	intents *services.IntentService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(intents *services.IntentService) *WebhookHandler {
	return &WebhookHandler{intents: intents}
}

// HandleWebhook processes one conversation turn. The upstream expects
// HTTP 200 with a fulfillment payload even on logical failure, so malformed
// input answers with the static invalid-request text rather than an error
// status.
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload dialogflow.WebhookRequest
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("⚠️  Failed to parse webhook payload: %v", err)
		return c.JSON(dialogflow.TextResponse(services.MsgInvalidRequest))
	}

	turn, err := dialogflow.ParseTurnRequest(&payload)
	if err != nil {
		log.Printf("⚠️  Invalid webhook request: %v", err)
		return c.JSON(dialogflow.TextResponse(services.MsgInvalidRequest))
	}

	log.Printf("📨 Intent %q from session %s", turn.Intent, turn.Session)

	return c.JSON(h.intents.HandleTurn(turn))
}
