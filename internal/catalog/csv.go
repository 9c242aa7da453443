package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// Source supplies a catalog snapshot from persistent storage.
type Source interface {
	Load(ctx context.Context) (*Table, error)
	Close() error
}

// CSVSource loads the catalog from a delimited file. The first row is the
// header; header whitespace is trimmed.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(_ context.Context) (*Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s is empty (no header row)", s.path)
	}
	return NewTable(records[0], records[1:]), nil
}

func (s *CSVSource) Close() error { return nil }
