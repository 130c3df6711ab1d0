package minidb

// SchemaColumn is the persisted descriptor of one column, in declaration
// order. Constraints keep the free-form uppercase tokens from CREATE TABLE.
type SchemaColumn struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Constraints []string `json:"constraints"`
}

// Snapshot is the full serialized row store of one table, rewritten
// wholesale after every successful mutation. Row IDs are serialized as
// string keys.
type Snapshot struct {
	Rows map[string]Row `json:"rows"`
}

// Storage persists, per table, a schema descriptor and a row snapshot.
// No partial writes, no transactions.
type Storage interface {
	ListTables() ([]string, error)
	TableExists(name string) bool
	// LoadTableSchema returns ok=false when no schema is persisted for name.
	LoadTableSchema(name string) ([]SchemaColumn, bool, error)
	// LoadTableData returns ok=false when no snapshot is persisted for name.
	LoadTableData(name string) (Snapshot, bool, error)
	SaveTableSchema(name string, columns []SchemaColumn) error
	SaveTableData(name string, data Snapshot) error
}
