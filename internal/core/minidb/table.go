package minidb

// Table owns its schema, row store and indexes. The schema is fixed at
// creation, row IDs start at 1 and are never reused.
type Table struct {
	Name      string
	Columns   []Column
	Rows      map[uint64]Row
	Indexes   map[string]*Index
	NextRowID uint64
}

// NewTable builds an empty table with one Index per primary key or unique
// column.
func NewTable(name string, columns []Column) *Table {
	indexes := make(map[string]*Index)
	for _, aColumn := range columns {
		if aColumn.PrimaryKey || aColumn.Unique {
			indexes[aColumn.Name] = NewIndex(aColumn.Name, true)
		}
	}
	return &Table{
		Name:      name,
		Columns:   columns,
		Rows:      make(map[uint64]Row),
		Indexes:   indexes,
		NextRowID: 1,
	}
}

func (t *Table) ColumnByName(name string) (Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return t.Columns[i], true
		}
	}
	return Column{}, false
}

func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, aColumn := range t.Columns {
		names = append(names, aColumn.Name)
	}
	return names
}
