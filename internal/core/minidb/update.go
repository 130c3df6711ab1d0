package minidb

import (
	"context"
	"fmt"
)

// executeUpdate applies the SET assignments to every row matching the
// condition list. Each target row is validated and committed in turn; an
// index conflict mid-loop aborts the statement but rows already committed
// by it stay committed.
func (d *Database) executeUpdate(ctx context.Context, stmt Statement) (StatementResult, error) {
	aTable, ok := d.tables[stmt.TableName]
	if !ok {
		return StatementResult{}, fmt.Errorf("table %q: %w", stmt.TableName, errTableDoesNotExist)
	}

	filtered, err := filterRows(aTable, stmt.Conditions)
	if err != nil {
		return StatementResult{}, err
	}

	var updatedCount int
	for _, rowID := range sortedRowIDs(filtered) {
		aRow := aTable.Rows[rowID]

		updatedRow := aRow.Clone()
		for columnName, newValue := range stmt.Updates {
			aColumn, ok := aTable.ColumnByName(columnName)
			if !ok {
				return StatementResult{}, fmt.Errorf("column %q: %w", columnName, errUnknownColumn)
			}
			if !aColumn.ValidateValue(newValue) {
				return StatementResult{}, fmt.Errorf("column %q expects %s: %w",
					columnName, aColumn.Kind, errTypeMismatch)
			}
			updatedRow[columnName] = newValue
		}

		excludeRowID := rowID
		if err := checkConstraints(aTable, updatedRow, &excludeRowID); err != nil {
			return StatementResult{}, err
		}

		for columnName, anIndex := range aTable.Indexes {
			oldValue := aRow[columnName]
			newValue := updatedRow[columnName]
			if oldValue == newValue {
				continue
			}
			if !anIndex.Update(oldValue, newValue, rowID) {
				return StatementResult{}, fmt.Errorf("column %q: %w", columnName, errDuplicateValue)
			}
		}

		aTable.Rows[rowID] = updatedRow
		updatedCount++
	}

	if updatedCount > 0 {
		if err := d.saveTableData(aTable); err != nil {
			return StatementResult{}, fmt.Errorf("save data: %w", err)
		}
	}

	d.logger.Sugar().With(
		"table", stmt.TableName,
		"rows", updatedCount,
	).Debug("updated rows")

	return StatementResult{RowsAffected: updatedCount}, nil
}
