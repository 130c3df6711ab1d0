package minidb

import (
	"fmt"
	"sort"
)

// executeJoin merges the already filtered left rows with matching rows of
// the right table, inner equi-join only. Merged rows are flat mappings with
// every column renamed "<table>.<column>". A left row with a NULL join key
// never participates. The right side is answered via its index when the
// join column has one, otherwise by a nested loop scan.
func (d *Database) executeJoin(leftTable *Table, leftRows map[uint64]Row, join *JoinClause) ([]Row, error) {
	rightTable, ok := d.tables[join.Table]
	if !ok {
		return nil, fmt.Errorf("table %q: %w", join.Table, errTableDoesNotExist)
	}

	result := make([]Row, 0)

	rightIndex, indexed := rightTable.Indexes[join.RightColumn]
	for _, leftRowID := range sortedRowIDs(leftRows) {
		leftRow := leftRows[leftRowID]
		leftValue := leftRow[join.LeftColumn]
		if leftValue == nil {
			continue
		}

		if indexed {
			matches := rightIndex.Search(leftValue)
			for _, rightRowID := range sortedIDSet(matches) {
				rightRow, ok := rightTable.Rows[rightRowID]
				if !ok {
					continue
				}
				result = append(result, mergeRows(leftTable.Name, leftRow, rightTable.Name, rightRow))
			}
			continue
		}

		for _, rightRowID := range sortedRowIDs(rightTable.Rows) {
			rightRow := rightTable.Rows[rightRowID]
			if rightRow[join.RightColumn] == leftValue {
				result = append(result, mergeRows(leftTable.Name, leftRow, rightTable.Name, rightRow))
			}
		}
	}

	return result, nil
}

func mergeRows(leftTable string, leftRow Row, rightTable string, rightRow Row) Row {
	merged := make(Row, len(leftRow)+len(rightRow))
	for k, v := range leftRow {
		merged[fmt.Sprintf("%s.%s", leftTable, k)] = v
	}
	for k, v := range rightRow {
		merged[fmt.Sprintf("%s.%s", rightTable, k)] = v
	}
	return merged
}

func sortedIDSet(set map[uint64]struct{}) []uint64 {
	rowIDs := make([]uint64, 0, len(set))
	for rowID := range set {
		rowIDs = append(rowIDs, rowID)
	}
	sort.Slice(rowIDs, func(i, j int) bool { return rowIDs[i] < rowIDs[j] })
	return rowIDs
}
