package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vai201/Rail-Madad-Chatbot/internal/models"
)

func TestMemoryStoreCreateQueryAutoIncrements(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateQuery("train late")
	require.NoError(t, err)
	second, err := store.CreateQuery("coach dirty")
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, models.StatusOpen, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestMemoryStoreConcurrentInsertsGetUniqueIDs(t *testing.T) {
	store := NewMemoryStore()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan uint, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			query, err := store.CreateQuery(fmt.Sprintf("query %d", i))
			if err != nil {
				errs <- err
				return
			}
			ids <- query.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryStoreComplaints(t *testing.T) {
	store := NewMemoryStore()

	saved, err := store.CreateComplaint(&models.Complaint{
		Text:       "no water in coach",
		PNR:        "PNR1234567890",
		Department: models.DepartmentCatering,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), saved.ID)
	assert.Equal(t, models.StatusOpen, saved.Status)

	_, err = store.CreateComplaint(&models.Complaint{
		Text:       "ticket refund pending",
		Department: models.DepartmentTicketing,
	})
	require.NoError(t, err)

	all, err := store.GetComplaints()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	catering, err := store.GetComplaintsByDepartment(models.DepartmentCatering)
	require.NoError(t, err)
	require.Len(t, catering, 1)
	assert.Equal(t, "no water in coach", catering[0].Text)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetQuery(99)
	assert.Error(t, err)
	_, err = store.GetComplaint(99)
	assert.Error(t, err)
}
