package minidb

import (
	"context"
	"fmt"
)

// executeInsert assembles the row (absent columns become NULL), runs the
// constraint check, commits it under a fresh row ID and persists the table
// snapshot.
func (d *Database) executeInsert(ctx context.Context, stmt Statement) (StatementResult, error) {
	aTable, ok := d.tables[stmt.TableName]
	if !ok {
		return StatementResult{}, fmt.Errorf("table %q: %w", stmt.TableName, errTableDoesNotExist)
	}

	columnNames := stmt.Fields
	if len(columnNames) == 0 {
		columnNames = aTable.ColumnNames()
	}
	if len(columnNames) != len(stmt.Values) {
		return StatementResult{}, fmt.Errorf("expected %d values, got %d: %w",
			len(columnNames), len(stmt.Values), errValueCountMismatch)
	}

	aRow := make(Row, len(aTable.Columns))
	for i, columnName := range columnNames {
		aColumn, ok := aTable.ColumnByName(columnName)
		if !ok {
			return StatementResult{}, fmt.Errorf("column %q: %w", columnName, errUnknownColumn)
		}
		if !aColumn.ValidateValue(stmt.Values[i]) {
			return StatementResult{}, fmt.Errorf("column %q expects %s: %w",
				columnName, aColumn.Kind, errTypeMismatch)
		}
		aRow[columnName] = stmt.Values[i]
	}
	for _, aColumn := range aTable.Columns {
		if _, ok := aRow[aColumn.Name]; !ok {
			aRow[aColumn.Name] = nil
		}
	}

	if err := checkConstraints(aTable, aRow, nil); err != nil {
		return StatementResult{}, err
	}

	rowID := aTable.NextRowID
	aTable.Rows[rowID] = aRow
	aTable.NextRowID++

	// Defensive re-check, the constraint check above already passed.
	for columnName, anIndex := range aTable.Indexes {
		if !anIndex.Insert(aRow[columnName], rowID) {
			delete(aTable.Rows, rowID)
			aTable.NextRowID--
			return StatementResult{}, fmt.Errorf("column %q: %w", columnName, errDuplicateValue)
		}
	}

	if err := d.saveTableData(aTable); err != nil {
		return StatementResult{}, fmt.Errorf("save data: %w", err)
	}

	d.logger.Sugar().With(
		"table", stmt.TableName,
		"row_id", rowID,
	).Debug("inserted row")

	return StatementResult{RowID: rowID}, nil
}
