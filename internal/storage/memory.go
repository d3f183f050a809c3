package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
)

// MemoryStore holds all data in memory for local testing
type MemoryStore struct {
	queries    map[uint]*models.Query
	complaints map[uint]*models.Complaint

	// Mutexes for thread safety
	queryMu     sync.RWMutex
	complaintMu sync.RWMutex

	// Counters for ID generation
	queryCounter     uint
	complaintCounter uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		queries:    make(map[uint]*models.Query),
		complaints: make(map[uint]*models.Complaint),
	}
}

// Query operations
func (m *MemoryStore) CreateQuery(text string) (*models.Query, error) {
	m.queryMu.Lock()
	defer m.queryMu.Unlock()

	m.queryCounter++
	query := &models.Query{
		Text:   text,
		Status: models.StatusOpen,
	}
	query.ID = m.queryCounter
	query.CreatedAt = time.Now()
	query.UpdatedAt = query.CreatedAt

	m.queries[query.ID] = query
	return query, nil
}

func (m *MemoryStore) GetQuery(id uint) (*models.Query, error) {
	m.queryMu.RLock()
	defer m.queryMu.RUnlock()

	query, exists := m.queries[id]
	if !exists {
		return nil, fmt.Errorf("query not found")
	}
	return query, nil
}

func (m *MemoryStore) GetQueries() ([]*models.Query, error) {
	m.queryMu.RLock()
	defer m.queryMu.RUnlock()

	queries := make([]*models.Query, 0, len(m.queries))
	for i := uint(1); i <= m.queryCounter; i++ {
		if query, exists := m.queries[i]; exists {
			queries = append(queries, query)
		}
	}
	return queries, nil
}

// Complaint operations
func (m *MemoryStore) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	m.complaintMu.Lock()
	defer m.complaintMu.Unlock()

	m.complaintCounter++
	complaint.ID = m.complaintCounter
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	if complaint.Status == "" {
		complaint.Status = models.StatusOpen
	}
	if complaint.Department == "" {
		complaint.Department = models.DepartmentGeneral
	}

	m.complaints[complaint.ID] = complaint
	return complaint, nil
}

func (m *MemoryStore) GetComplaint(id uint) (*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	complaint, exists := m.complaints[id]
	if !exists {
		return nil, fmt.Errorf("complaint not found")
	}
	return complaint, nil
}

func (m *MemoryStore) GetComplaints() ([]*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	complaints := make([]*models.Complaint, 0, len(m.complaints))
	for i := uint(1); i <= m.complaintCounter; i++ {
		if complaint, exists := m.complaints[i]; exists {
			complaints = append(complaints, complaint)
		}
	}
	return complaints, nil
}

func (m *MemoryStore) GetComplaintsByDepartment(department string) ([]*models.Complaint, error) {
	m.complaintMu.RLock()
	defer m.complaintMu.RUnlock()

	var complaints []*models.Complaint
	for i := uint(1); i <= m.complaintCounter; i++ {
		complaint, exists := m.complaints[i]
		if exists && complaint.Department == department {
			complaints = append(complaints, complaint)
		}
	}
	return complaints, nil
}
