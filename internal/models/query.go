package models

import (
	"gorm.io/gorm"
)

// Query is a free-form passenger query registered before any complaint flow.
type Query struct {
	gorm.Model
	Text   string `gorm:"not null" json:"text"`
	Status string `gorm:"default:'Open'" json:"status"` // Open, in_progress, resolved, closed
}

// Status values shared by queries and complaints
const (
	StatusOpen       = "Open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// BeforeCreate sets the default status if not provided
func (q *Query) BeforeCreate(tx *gorm.DB) error {
	if q.Status == "" {
		q.Status = StatusOpen
	}
	return nil
}
