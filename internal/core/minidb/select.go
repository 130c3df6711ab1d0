package minidb

import (
	"context"
	"fmt"
)

// executeSelect filters rows per the condition list and projects the
// requested columns. When a join clause is present the merged join rows are
// returned instead and the projection only determines the reported column
// list, not the row shape.
func (d *Database) executeSelect(ctx context.Context, stmt Statement) (StatementResult, error) {
	aTable, ok := d.tables[stmt.TableName]
	if !ok {
		return StatementResult{}, fmt.Errorf("table %q: %w", stmt.TableName, errTableDoesNotExist)
	}

	selectedColumns := stmt.Fields
	if len(selectedColumns) == 1 && selectedColumns[0] == "*" {
		selectedColumns = aTable.ColumnNames()
	} else {
		for _, columnName := range selectedColumns {
			if _, ok := aTable.ColumnByName(columnName); !ok {
				return StatementResult{}, fmt.Errorf("column %q: %w", columnName, errUnknownColumn)
			}
		}
	}

	filtered, err := filterRows(aTable, stmt.Conditions)
	if err != nil {
		return StatementResult{}, err
	}

	if stmt.Join != nil {
		joinRows, err := d.executeJoin(aTable, filtered, stmt.Join)
		if err != nil {
			return StatementResult{}, err
		}
		return StatementResult{
			Columns: selectedColumns,
			Rows:    joinRows,
		}, nil
	}

	rows := make([]Row, 0, len(filtered))
	for _, rowID := range sortedRowIDs(filtered) {
		aRow := filtered[rowID]
		resultRow := make(Row, len(selectedColumns))
		for _, columnName := range selectedColumns {
			resultRow[columnName] = aRow[columnName]
		}
		rows = append(rows, resultRow)
	}

	return StatementResult{
		Columns: selectedColumns,
		Rows:    rows,
	}, nil
}
