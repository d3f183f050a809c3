package services

import (
	"strings"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
)

// Keyword sets tested in priority order: catering first, then cleanliness,
// then ticketing. Matching is substring-based, anywhere in the text.
var (
	cateringKeywords = []string{
		"food", "meal", "water", "catering", "pantry",
		"breakfast", "lunch", "dinner", "tea", "snack", "stale",
	}
	cleanlinessKeywords = []string{
		"dirty", "clean", "garbage", "trash", "smell", "stink",
		"toilet", "washroom", "hygiene", "cockroach", "dust",
	}
	ticketingKeywords = []string{
		"ticket", "refund", "booking", "reservation", "tatkal",
		"seat", "berth", "fare", "waitlist",
	}
)

// ClassifyComplaint routes free complaint text to a department. The first
// matching keyword set wins, so text mentioning both food and dirt still
// goes to catering. Text matching nothing goes to General Operations.
func ClassifyComplaint(text string) string {
	lowered := strings.ToLower(text)

	switch {
	case containsAny(lowered, cateringKeywords):
		return models.DepartmentCatering
	case containsAny(lowered, cleanlinessKeywords):
		return models.DepartmentCleanliness
	case containsAny(lowered, ticketingKeywords):
		return models.DepartmentTicketing
	default:
		return models.DepartmentGeneral
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
