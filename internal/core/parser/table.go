package parser

import (
	"fmt"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var (
	errInvalidCreateTable   = fmt.Errorf("invalid CREATE TABLE syntax")
	errCreateTableNoColumns = fmt.Errorf("CREATE TABLE requires at least one column")
	errUnknownColumnType    = fmt.Errorf("unknown column type")
)

// parseCreateTable recognizes
//
//	CREATE TABLE <name> ( <col> <TYPE> [<CONSTRAINT>...], ... )
//
// Constraints are kept as free-form uppercase tokens; which of them make a
// column primary or unique is decided by the executor.
func (p *Parser) parseCreateTable(query string) (minidb.Statement, error) {
	rest := strings.TrimSpace(query[len("CREATE TABLE"):])

	tableName, rest := takeIdentifier(rest)
	if tableName == "" {
		return minidb.Statement{}, fmt.Errorf("%w: %w", errInvalidCreateTable, errEmptyTableName)
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") {
		return minidb.Statement{}, fmt.Errorf("%w: missing column definitions", errInvalidCreateTable)
	}
	closing := strings.LastIndex(rest, ")")
	if closing < 0 {
		return minidb.Statement{}, fmt.Errorf("%w: missing closing parenthesis", errInvalidCreateTable)
	}

	var columns []minidb.Column
	for _, columnDef := range splitByCommas(rest[1:closing]) {
		if columnDef == "" {
			continue
		}
		parts := strings.Fields(columnDef)
		if len(parts) < 2 {
			return minidb.Statement{}, fmt.Errorf("%w: column definition %q needs a name and a type", errInvalidCreateTable, columnDef)
		}

		kind, ok := minidb.ColumnKindFromString(strings.ToUpper(parts[1]))
		if !ok {
			return minidb.Statement{}, fmt.Errorf("%w: %q", errUnknownColumnType, parts[1])
		}

		constraints := make([]string, 0, len(parts)-2)
		for _, constraint := range parts[2:] {
			constraints = append(constraints, strings.ToUpper(constraint))
		}

		columns = append(columns, minidb.Column{
			Name:        parts[0],
			Kind:        kind,
			Constraints: constraints,
		})
	}
	if len(columns) == 0 {
		return minidb.Statement{}, errCreateTableNoColumns
	}

	return minidb.Statement{
		Kind:      minidb.CreateTable,
		TableName: tableName,
		Columns:   columns,
	}, nil
}
