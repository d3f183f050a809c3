package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
	"github.com/Vai201/Rail-Madad-Chatbot/internal/storage"
)

// AdminHandler serves read-only reporting endpoints
type AdminHandler struct {
	store storage.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetQueries lists all registered queries
func (h *AdminHandler) GetQueries(c *fiber.Ctx) error {
	queries, err := h.store.GetQueries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch queries",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"queries": queries,
		"count":   len(queries),
	})
}

// GetComplaints lists lodged complaints, optionally filtered by department
func (h *AdminHandler) GetComplaints(c *fiber.Ctx) error {
	var err error
	var complaints []*models.Complaint

	if department := c.Query("department"); department != "" {
		complaints, err = h.store.GetComplaintsByDepartment(department)
	} else {
		complaints, err = h.store.GetComplaints()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch complaints",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"complaints": complaints,
		"count":      len(complaints),
	})
}
