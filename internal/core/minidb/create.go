package minidb

import (
	"context"
	"fmt"
)

// executeCreateTable builds the table with an index per primary/unique
// column and persists both its schema and an empty snapshot immediately.
func (d *Database) executeCreateTable(ctx context.Context, stmt Statement) (StatementResult, error) {
	if _, ok := d.tables[stmt.TableName]; ok {
		return StatementResult{}, fmt.Errorf("table %q: %w", stmt.TableName, errTableAlreadyExists)
	}

	columns := make([]Column, 0, len(stmt.Columns))
	schemaColumns := make([]SchemaColumn, 0, len(stmt.Columns))
	for _, aColumn := range stmt.Columns {
		aColumn.PrimaryKey = containsToken(aColumn.Constraints, "PRIMARY", "KEY")
		aColumn.Unique = containsToken(aColumn.Constraints, "UNIQUE") || aColumn.PrimaryKey
		columns = append(columns, aColumn)
		schemaColumns = append(schemaColumns, SchemaColumn{
			Name:        aColumn.Name,
			Type:        aColumn.Kind.String(),
			Constraints: aColumn.Constraints,
		})
	}

	aTable := NewTable(stmt.TableName, columns)
	d.tables[stmt.TableName] = aTable

	if err := d.storage.SaveTableSchema(stmt.TableName, schemaColumns); err != nil {
		return StatementResult{}, fmt.Errorf("save schema: %w", err)
	}
	if err := d.saveTableData(aTable); err != nil {
		return StatementResult{}, fmt.Errorf("save data: %w", err)
	}

	d.logger.Sugar().With(
		"name", stmt.TableName,
		"columns", len(columns),
	).Debug("created table")

	return StatementResult{
		Message: fmt.Sprintf("Table %q created successfully", stmt.TableName),
	}, nil
}
