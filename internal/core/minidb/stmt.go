package minidb

type StatementKind int

const (
	CreateTable StatementKind = iota + 1
	Insert
	Select
	Update
	Delete
)

func (k StatementKind) String() string {
	switch k {
	case CreateTable:
		return "CREATE TABLE"
	case Insert:
		return "INSERT"
	case Select:
		return "SELECT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	default:
		return "Unknown"
	}
}

type Operator int

const (
	// Eq -> "="
	Eq Operator = iota + 1
	// Ne -> "!="
	Ne
)

func (o Operator) String() string {
	switch o {
	case Eq:
		return "="
	case Ne:
		return "!="
	default:
		return "Unknown"
	}
}

// Condition is a single WHERE term. Terms in a list are implicitly ANDed,
// there is no OR.
type Condition struct {
	Column   string
	Operator Operator
	Value    any
}

// JoinClause describes the single INNER JOIN a SELECT may carry. LeftColumn
// belongs to the statement's table, RightColumn to Table.
type JoinClause struct {
	Table       string
	LeftColumn  string
	RightColumn string
}

type ColumnKind int

const (
	Int ColumnKind = iota + 1
	Text
	Bool
)

func (k ColumnKind) String() string {
	switch k {
	case Int:
		return "INT"
	case Text:
		return "TEXT"
	case Bool:
		return "BOOL"
	default:
		return "Unknown"
	}
}

// ColumnKindFromString maps a declared type token to a ColumnKind.
func ColumnKindFromString(s string) (ColumnKind, bool) {
	switch s {
	case "INT":
		return Int, true
	case "TEXT":
		return Text, true
	case "BOOL":
		return Bool, true
	}
	return 0, false
}

type Column struct {
	Name        string
	Kind        ColumnKind
	PrimaryKey  bool
	Unique      bool
	Constraints []string
}

// ValidateValue reports whether a runtime value is acceptable for the
// column's declared type. NULL is always valid regardless of type.
func (c Column) ValidateValue(value any) bool {
	if value == nil {
		return true
	}
	switch c.Kind {
	case Int:
		_, ok := value.(int64)
		return ok
	case Text:
		_, ok := value.(string)
		return ok
	case Bool:
		_, ok := value.(bool)
		return ok
	}
	return false
}

// Statement is a parsed query. Kind selects which of the remaining fields
// are meaningful.
type Statement struct {
	Kind      StatementKind
	TableName string
	// Columns are the column definitions of a CREATE TABLE.
	Columns []Column
	// Fields is the explicit column list of an INSERT (nil means schema
	// order) or the projection of a SELECT ("*" selects all columns).
	Fields []string
	// Values are the INSERT values, positionally matching Fields.
	Values []any
	// Updates are the SET assignments of an UPDATE.
	Updates map[string]any
	// Conditions is the optional WHERE clause.
	Conditions []Condition
	// Join is the optional INNER JOIN of a SELECT.
	Join *JoinClause
}
