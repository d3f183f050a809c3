package storage

import (
	"gorm.io/gorm"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
)

// DatabaseStore persists records via GORM/PostgreSQL
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed storage
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Query operations
func (d *DatabaseStore) CreateQuery(text string) (*models.Query, error) {
	query := &models.Query{
		Text:   text,
		Status: models.StatusOpen,
	}
	if err := d.db.Create(query).Error; err != nil {
		return nil, err
	}
	return query, nil
}

func (d *DatabaseStore) GetQuery(id uint) (*models.Query, error) {
	var query models.Query
	if err := d.db.First(&query, id).Error; err != nil {
		return nil, err
	}
	return &query, nil
}

func (d *DatabaseStore) GetQueries() ([]*models.Query, error) {
	var queries []*models.Query
	if err := d.db.Order("id").Find(&queries).Error; err != nil {
		return nil, err
	}
	return queries, nil
}

// Complaint operations
func (d *DatabaseStore) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	if err := d.db.Create(complaint).Error; err != nil {
		return nil, err
	}
	return complaint, nil
}

func (d *DatabaseStore) GetComplaint(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := d.db.First(&complaint, id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (d *DatabaseStore) GetComplaints() ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	if err := d.db.Order("id").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (d *DatabaseStore) GetComplaintsByDepartment(department string) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	if err := d.db.Where("department = ?", department).Order("id").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}
