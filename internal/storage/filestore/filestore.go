package filestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

const (
	schemaSuffix = "_schema.json"
	dataSuffix   = "_data.json"
)

// FileStore persists one schema descriptor and one row snapshot per table as
// JSON files inside a data directory. Writes are whole-file rewrites, a
// crash mid-write can leave a truncated snapshot.
type FileStore struct {
	dataDir string
}

func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) ListTables() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	var tables []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), schemaSuffix) {
			continue
		}
		tables = append(tables, strings.TrimSuffix(entry.Name(), schemaSuffix))
	}
	sort.Strings(tables)
	return tables, nil
}

func (s *FileStore) TableExists(name string) bool {
	_, err := os.Stat(s.schemaPath(name))
	return err == nil
}

func (s *FileStore) LoadTableSchema(name string) ([]minidb.SchemaColumn, bool, error) {
	buf, err := os.ReadFile(s.schemaPath(name))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read schema: %w", err)
	}
	var columns []minidb.SchemaColumn
	if err := json.Unmarshal(buf, &columns); err != nil {
		return nil, false, fmt.Errorf("unmarshal schema: %w", err)
	}
	return columns, true, nil
}

func (s *FileStore) LoadTableData(name string) (minidb.Snapshot, bool, error) {
	buf, err := os.ReadFile(s.dataPath(name))
	if os.IsNotExist(err) {
		return minidb.Snapshot{}, false, nil
	}
	if err != nil {
		return minidb.Snapshot{}, false, fmt.Errorf("read data: %w", err)
	}
	var data minidb.Snapshot
	// UseNumber keeps integer values exact across the round trip.
	decoder := json.NewDecoder(bytes.NewReader(buf))
	decoder.UseNumber()
	if err := decoder.Decode(&data); err != nil {
		return minidb.Snapshot{}, false, fmt.Errorf("unmarshal data: %w", err)
	}
	return data, true, nil
}

func (s *FileStore) SaveTableSchema(name string, columns []minidb.SchemaColumn) error {
	buf, err := json.MarshalIndent(columns, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(s.schemaPath(name), buf, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

func (s *FileStore) SaveTableData(name string, data minidb.Snapshot) error {
	if data.Rows == nil {
		data.Rows = make(map[string]minidb.Row)
	}
	buf, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}
	if err := os.WriteFile(s.dataPath(name), buf, 0o644); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	return nil
}

func (s *FileStore) schemaPath(name string) string {
	return filepath.Join(s.dataDir, name+schemaSuffix)
}

func (s *FileStore) dataPath(name string) string {
	return filepath.Join(s.dataDir, name+dataSuffix)
}
