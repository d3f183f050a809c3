package models

import (
	"gorm.io/gorm"
)

// Complaint is a lodged passenger complaint. PNR and Station are mutually
// exclusive: a complaint is tied either to a verified journey (PNR + Token)
// or to a confirmed station, never both.
type Complaint struct {
	gorm.Model
	Phone      string `gorm:"index" json:"phone,omitempty"`
	PNR        string `gorm:"index" json:"pnr,omitempty"`
	Token      string `json:"token,omitempty"`
	Station    string `json:"station,omitempty"`
	Text       string `gorm:"not null" json:"text"`
	Department string `gorm:"index" json:"department"`
	Status     string `gorm:"default:'Open'" json:"status"` // Open, in_progress, resolved, closed
}

// Departments a complaint can be routed to
const (
	DepartmentCatering    = "IRCTC Department"
	DepartmentCleanliness = "Cleanliness Department"
	DepartmentTicketing   = "Ticketing Department"
	DepartmentGeneral     = "General Operations"
)

// BeforeCreate sets the default status and department if not provided
func (cm *Complaint) BeforeCreate(tx *gorm.DB) error {
	if cm.Status == "" {
		cm.Status = StatusOpen
	}
	if cm.Department == "" {
		cm.Department = DepartmentGeneral
	}
	return nil
}
