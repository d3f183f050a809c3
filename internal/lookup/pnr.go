package lookup

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
)

// PNRRecord is one row of the read-only PNR reservation table
type PNRRecord struct {
	PNR         string `json:"pnr"`
	TrainNumber string `json:"train_number"`
	TrainName   string `json:"train_name"`
	FromStation string `json:"from_station"`
	ToStation   string `json:"to_station"`
}

// PNRStore is the startup-loaded PNR table. It is read-only after Load,
// so concurrent lookups need no locking.
type PNRStore struct {
	records map[string]*PNRRecord
	loaded  bool
}

// LoadPNRStore reads the PNR table from a CSV file with columns
// PNR,TrainNumber,TrainName,FromStation,ToStation (header row required).
// On failure it returns an unloaded store so dependent handlers can
// fail closed instead of crashing the process.
func LoadPNRStore(path string) (*PNRStore, error) {
	store := &PNRStore{records: make(map[string]*PNRRecord)}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("❌ Failed to open PNR data file %s: %v", path, err)
		return store, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Printf("❌ Failed to parse PNR data file %s: %v", path, err)
		return store, err
	}
	if len(rows) < 1 {
		return store, fmt.Errorf("pnr data file %s is empty", path)
	}

	// Skip the header row
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return store, fmt.Errorf("pnr data file %s: row %d has %d columns, want 5", path, i+2, len(row))
		}
		record := &PNRRecord{
			PNR:         row[0],
			TrainNumber: row[1],
			TrainName:   row[2],
			FromStation: row[3],
			ToStation:   row[4],
		}
		store.records[record.PNR] = record
	}

	store.loaded = true
	log.Printf("✅ PNR dataset loaded successfully (%d records)", len(store.records))
	return store, nil
}

// Loaded reports whether the startup load succeeded
func (s *PNRStore) Loaded() bool {
	return s.loaded
}

// Len returns the number of loaded records
func (s *PNRStore) Len() int {
	return len(s.records)
}

// Get looks up a record by its exact 13-character key ("PNR" + 10 digits)
func (s *PNRStore) Get(key string) (*PNRRecord, bool) {
	record, exists := s.records[key]
	return record, exists
}
