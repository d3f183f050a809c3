package storage

import (
	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Query operations
	CreateQuery(text string) (*models.Query, error)
	GetQuery(id uint) (*models.Query, error)
	GetQueries() ([]*models.Query, error)

	// Complaint operations
	CreateComplaint(complaint *models.Complaint) (*models.Complaint, error)
	GetComplaint(id uint) (*models.Complaint, error)
	GetComplaints() ([]*models.Complaint, error)
	GetComplaintsByDepartment(department string) ([]*models.Complaint, error)
}
