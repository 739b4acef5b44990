package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cesar-richard-ei/weekly-ingestor/pkg/models/domain"
)

// Expected header of an entries file.
var header = []string{"date", "kind", "duration", "description", "client"}

// Store reads raw day entries from a CSV file with the columns
// date,kind,duration,description,client. Durations stay textual: the
// analysis boundary owns their validation.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// GetEntries returns the file's entries restricted to [from, to].
func (s *Store) GetEntries(_ context.Context, from, to time.Time) ([]domain.RawEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open entries file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(header)

	first, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read entries header: %w", err)
	}
	for i, name := range header {
		if first[i] != name {
			return nil, fmt.Errorf("unexpected entries header: got %v, want %v", first, header)
		}
	}

	var entries []domain.RawEntry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read entries file: %w", err)
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", line, record[0], err)
		}
		if date.Before(from) || date.After(to) {
			continue
		}

		entries = append(entries, domain.RawEntry{
			Date:        date,
			Kind:        record[1],
			Duration:    record[2],
			Description: record[3],
			Client:      record[4],
		})
	}

	return entries, nil
}
