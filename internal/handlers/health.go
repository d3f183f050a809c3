package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/lookup"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version  string
	pnrs     *lookup.PNRStore
	stations *lookup.StationStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, pnrs *lookup.PNRStore, stations *lookup.StationStore) *HealthHandler {
	return &HealthHandler{
		Version:  version,
		pnrs:     pnrs,
		stations: stations,
	}
}

// Check returns the health status of the service. A lookup table that failed
// to load at startup makes the service report degraded with 503, since the
// PNR and station intents fail closed without it.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	if !h.pnrs.Loaded() || !h.stations.Loaded() {
		status = "degraded"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"version": h.Version,
		"services": fiber.Map{
			"pnr_lookup":     h.pnrs.Loaded(),
			"station_lookup": h.stations.Loaded(),
		},
	})
}
