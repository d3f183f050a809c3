package lookup

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
)

// StationRecord is one row of the read-only station table
type StationRecord struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// StationStore is the startup-loaded station table. Rows keep their
// original case; a case-folded index over both code and display name
// answers lookups, so the source file is never re-read.
type StationStore struct {
	rows   []*StationRecord
	index  map[string]int
	loaded bool
}

// LoadStationStore reads the station table from a CSV file with columns
// StationName,Code (header row required). On failure it returns an
// unloaded store so dependent handlers can fail closed.
func LoadStationStore(path string) (*StationStore, error) {
	store := &StationStore{index: make(map[string]int)}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("❌ Failed to open station data file %s: %v", path, err)
		return store, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Printf("❌ Failed to parse station data file %s: %v", path, err)
		return store, err
	}
	if len(rows) < 1 {
		return store, fmt.Errorf("station data file %s is empty", path)
	}

	// Skip the header row
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return store, fmt.Errorf("station data file %s: row %d has %d columns, want 2", path, i+2, len(row))
		}
		record := &StationRecord{
			Name: strings.TrimSpace(row[0]),
			Code: strings.TrimSpace(row[1]),
		}
		idx := len(store.rows)
		store.rows = append(store.rows, record)
		store.index[strings.ToLower(record.Code)] = idx
		store.index[strings.ToLower(record.Name)] = idx
	}

	store.loaded = true
	log.Printf("✅ Station dataset loaded successfully (%d stations)", len(store.rows))
	return store, nil
}

// Loaded reports whether the startup load succeeded
func (s *StationStore) Loaded() bool {
	return s.loaded
}

// Len returns the number of loaded stations
func (s *StationStore) Len() int {
	return len(s.rows)
}

// Find matches needle case-insensitively against station code and display
// name. The returned record keeps the original-case display name.
func (s *StationStore) Find(needle string) (*StationRecord, bool) {
	idx, exists := s.index[strings.ToLower(strings.TrimSpace(needle))]
	if !exists {
		return nil, false
	}
	return s.rows[idx], true
}
