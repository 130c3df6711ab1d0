package memstore

import (
	"sort"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

// MemStore keeps schema descriptors and row snapshots in memory. It backs
// tests and the scratch storage mode, stored values are deep-copied so a
// reconstructed engine sees exactly what was saved.
type MemStore struct {
	schemas map[string][]minidb.SchemaColumn
	data    map[string]minidb.Snapshot
}

func New() *MemStore {
	return &MemStore{
		schemas: make(map[string][]minidb.SchemaColumn),
		data:    make(map[string]minidb.Snapshot),
	}
}

func (s *MemStore) ListTables() ([]string, error) {
	tables := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables, nil
}

func (s *MemStore) TableExists(name string) bool {
	_, ok := s.schemas[name]
	return ok
}

func (s *MemStore) LoadTableSchema(name string) ([]minidb.SchemaColumn, bool, error) {
	columns, ok := s.schemas[name]
	if !ok {
		return nil, false, nil
	}
	return append([]minidb.SchemaColumn(nil), columns...), true, nil
}

func (s *MemStore) LoadTableData(name string) (minidb.Snapshot, bool, error) {
	data, ok := s.data[name]
	if !ok {
		return minidb.Snapshot{}, false, nil
	}
	return cloneSnapshot(data), true, nil
}

func (s *MemStore) SaveTableSchema(name string, columns []minidb.SchemaColumn) error {
	s.schemas[name] = append([]minidb.SchemaColumn(nil), columns...)
	return nil
}

func (s *MemStore) SaveTableData(name string, data minidb.Snapshot) error {
	s.data[name] = cloneSnapshot(data)
	return nil
}

func cloneSnapshot(data minidb.Snapshot) minidb.Snapshot {
	clone := minidb.Snapshot{Rows: make(map[string]minidb.Row, len(data.Rows))}
	for rowID, aRow := range data.Rows {
		clone.Rows[rowID] = aRow.Clone()
	}
	return clone
}
