package minidb

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

var (
	errUnrecognizedStatementType = fmt.Errorf("unrecognised statement type")
	errTableDoesNotExist         = fmt.Errorf("table does not exist")
	errTableAlreadyExists        = fmt.Errorf("table already exists")
	errUnknownColumn             = fmt.Errorf("unknown column")
	errTypeMismatch              = fmt.Errorf("invalid value type")
	errValueCountMismatch        = fmt.Errorf("column count does not match value count")
	errDuplicateValue            = fmt.Errorf("duplicate value for unique column")
	errNullPrimaryKey            = fmt.Errorf("primary key column cannot be NULL")
)

type Parser interface {
	Parse(context.Context, string) (Statement, error)
}

// Database owns the full set of tables and interprets parsed statements
// against them, persisting each table's snapshot after every successful
// mutation. A single Database instance assumes exclusive ownership of its
// storage location.
type Database struct {
	parser  Parser
	storage Storage
	tables  map[string]*Table
	logger  *zap.Logger
}

// NewDatabase loads every persisted table, rebuilding columns, rows and
// indexes from storage.
func NewDatabase(ctx context.Context, logger *zap.Logger, aParser Parser, aStorage Storage) (*Database, error) {
	aDatabase := &Database{
		parser:  aParser,
		storage: aStorage,
		tables:  make(map[string]*Table),
		logger:  logger,
	}

	tableNames, err := aStorage.ListTables()
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	for _, name := range tableNames {
		if err := aDatabase.loadTable(name); err != nil {
			return nil, fmt.Errorf("load table %q: %w", name, err)
		}
	}

	logger.Sugar().With("tables", len(aDatabase.tables)).Debug("database loaded")

	return aDatabase, nil
}

// loadTable reconstructs one table from its persisted schema descriptor plus
// a full replay of its row snapshot to rebuild indexes and the row ID
// counter.
func (d *Database) loadTable(name string) error {
	schemaColumns, ok, err := d.storage.LoadTableSchema(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	columns := make([]Column, 0, len(schemaColumns))
	for _, sc := range schemaColumns {
		kind, ok := ColumnKindFromString(sc.Type)
		if !ok {
			return fmt.Errorf("column %q has unknown type %q", sc.Name, sc.Type)
		}
		columns = append(columns, Column{
			Name:        sc.Name,
			Kind:        kind,
			PrimaryKey:  containsToken(sc.Constraints, "PRIMARY", "KEY"),
			Unique:      containsToken(sc.Constraints, "UNIQUE") || containsToken(sc.Constraints, "PRIMARY", "KEY"),
			Constraints: sc.Constraints,
		})
	}

	aTable := NewTable(name, columns)

	data, ok, err := d.storage.LoadTableData(name)
	if err != nil {
		return err
	}
	if ok {
		for rowIDKey, aRow := range data.Rows {
			rowID, err := strconv.ParseUint(rowIDKey, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid row ID %q: %w", rowIDKey, err)
			}
			if rowID >= aTable.NextRowID {
				aTable.NextRowID = rowID + 1
			}
			normalized := normalizeRow(columns, aRow)
			aTable.Rows[rowID] = normalized
			for columnName, anIndex := range aTable.Indexes {
				anIndex.Insert(normalized[columnName], rowID)
			}
		}
	}

	d.tables[name] = aTable

	d.logger.Sugar().With(
		"name", name,
		"rows", len(aTable.Rows),
	).Debug("loaded table")

	return nil
}

// Execute parses query text and executes the resulting statement.
func (d *Database) Execute(ctx context.Context, query string) (StatementResult, error) {
	stmt, err := d.parser.Parse(ctx, query)
	if err != nil {
		return StatementResult{}, err
	}
	return d.ExecuteStatement(ctx, stmt)
}

func (d *Database) ExecuteStatement(ctx context.Context, stmt Statement) (StatementResult, error) {
	switch stmt.Kind {
	case CreateTable:
		return d.executeCreateTable(ctx, stmt)
	case Insert:
		return d.executeInsert(ctx, stmt)
	case Select:
		return d.executeSelect(ctx, stmt)
	case Update:
		return d.executeUpdate(ctx, stmt)
	case Delete:
		return d.executeDelete(ctx, stmt)
	}
	return StatementResult{}, errUnrecognizedStatementType
}

// ListTableNames lists names of all tables in the database.
func (d *Database) ListTableNames(ctx context.Context) []string {
	tables := make([]string, 0, len(d.tables))
	for tableName := range d.tables {
		tables = append(tables, tableName)
	}
	sort.Strings(tables)
	return tables
}

type ColumnInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"is_primary"`
	IsUnique  bool   `json:"is_unique"`
}

type TableInfo struct {
	Schema   []ColumnInfo `json:"schema"`
	RowCount int          `json:"row_count"`
}

func (d *Database) TableInfo(ctx context.Context, name string) (TableInfo, error) {
	aTable, ok := d.tables[name]
	if !ok {
		return TableInfo{}, fmt.Errorf("table %q: %w", name, errTableDoesNotExist)
	}
	schema := make([]ColumnInfo, 0, len(aTable.Columns))
	for _, aColumn := range aTable.Columns {
		schema = append(schema, ColumnInfo{
			Name:      aColumn.Name,
			Type:      aColumn.Kind.String(),
			IsPrimary: aColumn.PrimaryKey,
			IsUnique:  aColumn.Unique,
		})
	}
	return TableInfo{
		Schema:   schema,
		RowCount: len(aTable.Rows),
	}, nil
}

// saveTableData rewrites a table's entire row snapshot to storage.
func (d *Database) saveTableData(aTable *Table) error {
	data := Snapshot{Rows: make(map[string]Row, len(aTable.Rows))}
	for rowID, aRow := range aTable.Rows {
		data.Rows[strconv.FormatUint(rowID, 10)] = aRow.Clone()
	}
	return d.storage.SaveTableData(aTable.Name, data)
}

func containsToken(tokens []string, sequence ...string) bool {
	for i := 0; i+len(sequence) <= len(tokens); i++ {
		matched := true
		for j, want := range sequence {
			if tokens[i+j] != want {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func sortedRowIDs(rows map[uint64]Row) []uint64 {
	rowIDs := make([]uint64, 0, len(rows))
	for rowID := range rows {
		rowIDs = append(rowIDs, rowID)
	}
	sort.Slice(rowIDs, func(i, j int) bool { return rowIDs[i] < rowIDs[j] })
	return rowIDs
}
