package minidb

// Index is a hash map from column value to the set of row IDs currently
// holding that value. NULL values are never indexed.
type Index struct {
	ColumnName string
	Unique     bool
	values     map[any]map[uint64]struct{}
}

func NewIndex(columnName string, unique bool) *Index {
	return &Index{
		ColumnName: columnName,
		Unique:     unique,
		values:     make(map[any]map[uint64]struct{}),
	}
}

// Insert adds a row ID under a value. It returns false, without mutating the
// index, when the index is unique and the value is already held by a row.
func (idx *Index) Insert(value any, rowID uint64) bool {
	if value == nil {
		return true
	}
	if idx.Unique && len(idx.values[value]) > 0 {
		return false
	}
	rowIDs, ok := idx.values[value]
	if !ok {
		rowIDs = make(map[uint64]struct{})
		idx.values[value] = rowIDs
	}
	rowIDs[rowID] = struct{}{}
	return true
}

// Delete removes the row ID from the value's set, pruning the value entry
// once the set becomes empty. Absent entries are a no-op.
func (idx *Index) Delete(value any, rowID uint64) {
	rowIDs, ok := idx.values[value]
	if !ok {
		return
	}
	delete(rowIDs, rowID)
	if len(rowIDs) == 0 {
		delete(idx.values, value)
	}
}

// Update is delete-then-insert. If the insert reports a duplicate the prior
// delete has already happened, callers must not assume atomicity.
func (idx *Index) Update(oldValue, newValue any, rowID uint64) bool {
	idx.Delete(oldValue, rowID)
	return idx.Insert(newValue, rowID)
}

// Search returns the set of row IDs holding a value, empty if none.
func (idx *Index) Search(value any) map[uint64]struct{} {
	rowIDs := make(map[uint64]struct{}, len(idx.values[value]))
	for rowID := range idx.values[value] {
		rowIDs[rowID] = struct{}{}
	}
	return rowIDs
}

func (idx *Index) HasValue(value any) bool {
	_, ok := idx.values[value]
	return ok
}
