package minidb

import (
	"context"
	"fmt"
)

// executeDelete removes every row matching the condition list from all
// column indexes and from the row store, persisting once if anything was
// removed. Row IDs of deleted rows are never reused.
func (d *Database) executeDelete(ctx context.Context, stmt Statement) (StatementResult, error) {
	aTable, ok := d.tables[stmt.TableName]
	if !ok {
		return StatementResult{}, fmt.Errorf("table %q: %w", stmt.TableName, errTableDoesNotExist)
	}

	filtered, err := filterRows(aTable, stmt.Conditions)
	if err != nil {
		return StatementResult{}, err
	}

	var deletedCount int
	for _, rowID := range sortedRowIDs(filtered) {
		aRow := aTable.Rows[rowID]
		for columnName, anIndex := range aTable.Indexes {
			anIndex.Delete(aRow[columnName], rowID)
		}
		delete(aTable.Rows, rowID)
		deletedCount++
	}

	if deletedCount > 0 {
		if err := d.saveTableData(aTable); err != nil {
			return StatementResult{}, fmt.Errorf("save data: %w", err)
		}
	}

	d.logger.Sugar().With(
		"table", stmt.TableName,
		"rows", deletedCount,
	).Debug("deleted rows")

	return StatementResult{RowsAffected: deletedCount}, nil
}
