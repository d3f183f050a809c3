package lookup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestStations(t *testing.T) *StationStore {
	t.Helper()
	path := writeTestFile(t, "stations.csv",
		"StationName,Code\n"+
			"New Delhi,ndls\n"+
			"Howrah Junction,HWH\n")

	store, err := LoadStationStore(path)
	require.NoError(t, err)
	require.True(t, store.Loaded())
	return store
}

func TestStationFindByCodeCaseInsensitive(t *testing.T) {
	store := loadTestStations(t)

	for _, needle := range []string{"NDLS", "ndls", "Ndls"} {
		record, found := store.Find(needle)
		require.True(t, found, "needle %q", needle)
		// The original-case display name is preserved after a folded match
		assert.Equal(t, "New Delhi", record.Name)
	}
}

func TestStationFindByNameCaseInsensitive(t *testing.T) {
	store := loadTestStations(t)

	record, found := store.Find("howrah junction")
	require.True(t, found)
	assert.Equal(t, "Howrah Junction", record.Name)
	assert.Equal(t, "HWH", record.Code)
}

func TestStationFindTrimsWhitespace(t *testing.T) {
	store := loadTestStations(t)

	record, found := store.Find("  new delhi ")
	require.True(t, found)
	assert.Equal(t, "New Delhi", record.Name)
}

func TestStationFindNoMatch(t *testing.T) {
	store := loadTestStations(t)

	_, found := store.Find("Atlantis Central")
	assert.False(t, found)
}

func TestLoadStationStoreMissingFile(t *testing.T) {
	store, err := LoadStationStore(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
	require.NotNil(t, store)
	assert.False(t, store.Loaded())
	_, found := store.Find("NDLS")
	assert.False(t, found)
}
