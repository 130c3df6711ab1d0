package minidb

import "fmt"

// filterRows applies a WHERE condition list to a table's row store. When any
// condition is an equality test on an indexed column, that single condition
// is answered via the index and the result returned immediately, remaining
// conditions are not additionally checked. Otherwise every condition is
// applied as an AND over a full scan.
func filterRows(aTable *Table, conditions []Condition) (map[uint64]Row, error) {
	for _, aCondition := range conditions {
		if _, ok := aTable.ColumnByName(aCondition.Column); !ok {
			return nil, fmt.Errorf("column %q: %w", aCondition.Column, errUnknownColumn)
		}
	}

	if len(conditions) == 0 {
		filtered := make(map[uint64]Row, len(aTable.Rows))
		for rowID, aRow := range aTable.Rows {
			filtered[rowID] = aRow
		}
		return filtered, nil
	}

	// Index short-circuit, the first eligible equality condition answers
	// the whole list.
	for _, aCondition := range conditions {
		anIndex, ok := aTable.Indexes[aCondition.Column]
		if aCondition.Operator != Eq || !ok {
			continue
		}
		filtered := make(map[uint64]Row)
		for rowID := range anIndex.Search(aCondition.Value) {
			if aRow, ok := aTable.Rows[rowID]; ok {
				filtered[rowID] = aRow
			}
		}
		return filtered, nil
	}

	filtered := make(map[uint64]Row)
	for rowID, aRow := range aTable.Rows {
		matchesAll := true
		for _, aCondition := range conditions {
			columnValue := aRow[aCondition.Column]
			switch aCondition.Operator {
			case Eq:
				if columnValue != aCondition.Value {
					matchesAll = false
				}
			case Ne:
				if columnValue == aCondition.Value {
					matchesAll = false
				}
			}
			if !matchesAll {
				break
			}
		}
		if matchesAll {
			filtered[rowID] = aRow
		}
	}
	return filtered, nil
}

// checkConstraints verifies primary key non-nullity and primary/unique value
// uniqueness for a row about to be committed. excludeRowID exempts the row
// being updated so it may keep its own unique value.
func checkConstraints(aTable *Table, aRow Row, excludeRowID *uint64) error {
	for _, aColumn := range aTable.Columns {
		value := aRow[aColumn.Name]

		if aColumn.PrimaryKey && value == nil {
			return fmt.Errorf("column %q: %w", aColumn.Name, errNullPrimaryKey)
		}

		if (aColumn.PrimaryKey || aColumn.Unique) && value != nil {
			anIndex := aTable.Indexes[aColumn.Name]
			if !anIndex.HasValue(value) {
				continue
			}
			existing := anIndex.Search(value)
			if excludeRowID != nil {
				delete(existing, *excludeRowID)
			}
			if len(existing) > 0 {
				return fmt.Errorf("value %v for column %q: %w", value, aColumn.Name, errDuplicateValue)
			}
		}
	}
	return nil
}
