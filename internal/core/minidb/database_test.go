package minidb

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubStorage is a minimal in-memory Storage used by the engine tests.
type stubStorage struct {
	schemas map[string][]SchemaColumn
	data    map[string]Snapshot
}

func newStubStorage() *stubStorage {
	return &stubStorage{
		schemas: make(map[string][]SchemaColumn),
		data:    make(map[string]Snapshot),
	}
}

func (s *stubStorage) ListTables() ([]string, error) {
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *stubStorage) TableExists(name string) bool {
	_, ok := s.schemas[name]
	return ok
}

func (s *stubStorage) LoadTableSchema(name string) ([]SchemaColumn, bool, error) {
	columns, ok := s.schemas[name]
	return columns, ok, nil
}

func (s *stubStorage) LoadTableData(name string) (Snapshot, bool, error) {
	data, ok := s.data[name]
	return data, ok, nil
}

func (s *stubStorage) SaveTableSchema(name string, columns []SchemaColumn) error {
	s.schemas[name] = columns
	return nil
}

func (s *stubStorage) SaveTableData(name string, data Snapshot) error {
	s.data[name] = data
	return nil
}

func newTestDatabase(t *testing.T, aStorage Storage) *Database {
	t.Helper()
	aDatabase, err := NewDatabase(context.Background(), zap.NewNop(), nil, aStorage)
	require.NoError(t, err)
	return aDatabase
}

func createUsersTable(t *testing.T, aDatabase *Database) {
	t.Helper()
	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      CreateTable,
		TableName: "users",
		Columns: []Column{
			{Name: "id", Kind: Int, Constraints: []string{"PRIMARY", "KEY"}},
			{Name: "name", Kind: Text, Constraints: []string{}},
			{Name: "email", Kind: Text, Constraints: []string{"UNIQUE"}},
			{Name: "active", Kind: Bool, Constraints: []string{}},
		},
	})
	require.NoError(t, err)
}

func insertUser(t *testing.T, aDatabase *Database, id int64, name, email string, active bool) uint64 {
	t.Helper()
	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Insert,
		TableName: "users",
		Values:    []any{id, name, email, active},
	})
	require.NoError(t, err)
	return result.RowID
}

func TestExecuteStatement_UnrecognizedKind(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())

	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{})
	assert.ErrorIs(t, err, errUnrecognizedStatementType)
}

func TestNewDatabase_LoadsPersistedTables(t *testing.T) {
	t.Parallel()

	aStorage := newStubStorage()
	aStorage.schemas["users"] = []SchemaColumn{
		{Name: "id", Type: "INT", Constraints: []string{"PRIMARY", "KEY"}},
		{Name: "name", Type: "TEXT", Constraints: []string{}},
	}
	aStorage.data["users"] = Snapshot{Rows: map[string]Row{
		// JSON decoding hands back numbers as float64 unless told otherwise,
		// loading must coerce them to the column's kind.
		"1": {"id": float64(1), "name": "Alice"},
		"3": {"id": float64(3), "name": "Carol"},
	}}

	aDatabase := newTestDatabase(t, aStorage)

	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Select,
		TableName: "users",
		Fields:    []string{"*"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{"id": int64(1), "name": "Alice"},
		{"id": int64(3), "name": "Carol"},
	}, result.Rows)

	// The row ID counter resumes past the highest persisted ID.
	inserted, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Insert,
		TableName: "users",
		Values:    []any{int64(4), "Dave"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), inserted.RowID)

	// Indexes are rebuilt during load, duplicate primary keys are caught.
	_, err = aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Insert,
		TableName: "users",
		Values:    []any{int64(3), "Impostor"},
	})
	assert.ErrorIs(t, err, errDuplicateValue)
}

func TestListTableNames(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	for _, name := range []string{"orders", "users", "items"} {
		_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
			Kind:      CreateTable,
			TableName: name,
			Columns: []Column{
				{Name: "id", Kind: Int, Constraints: []string{"PRIMARY", "KEY"}},
			},
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"items", "orders", "users"}, aDatabase.ListTableNames(context.Background()))
}

func TestTableInfo(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	insertUser(t, aDatabase, 1, "Alice", "a@x.com", true)

	info, err := aDatabase.TableInfo(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, TableInfo{
		Schema: []ColumnInfo{
			{Name: "id", Type: "INT", IsPrimary: true, IsUnique: true},
			{Name: "name", Type: "TEXT"},
			{Name: "email", Type: "TEXT", IsUnique: true},
			{Name: "active", Type: "BOOL"},
		},
		RowCount: 1,
	}, info)

	_, err = aDatabase.TableInfo(context.Background(), "missing")
	assert.ErrorIs(t, err, errTableDoesNotExist)
}
