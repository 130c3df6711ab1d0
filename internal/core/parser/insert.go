package parser

import (
	"fmt"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var errInvalidInsert = fmt.Errorf("invalid INSERT syntax")

// parseInsert recognizes
//
//	INSERT INTO <name> [( <col>, ... )] VALUES ( <value>, ... )
//
// An omitted column list means the schema's declared order.
func (p *Parser) parseInsert(query string) (minidb.Statement, error) {
	rest := strings.TrimSpace(query[len("INSERT INTO"):])

	tableName, rest := takeIdentifier(rest)
	if tableName == "" {
		return minidb.Statement{}, fmt.Errorf("%w: %w", errInvalidInsert, errEmptyTableName)
	}
	rest = strings.TrimSpace(rest)

	var fields []string
	if strings.HasPrefix(rest, "(") {
		end := strings.Index(rest, ")")
		if end < 0 {
			return minidb.Statement{}, fmt.Errorf("%w: unterminated column list", errInvalidInsert)
		}
		for _, columnName := range strings.Split(rest[1:end], ",") {
			fields = append(fields, strings.TrimSpace(columnName))
		}
		rest = strings.TrimSpace(rest[end+1:])
	}

	if !strings.HasPrefix(strings.ToUpper(rest), "VALUES") {
		return minidb.Statement{}, fmt.Errorf("%w: missing VALUES clause", errInvalidInsert)
	}
	rest = strings.TrimSpace(rest[len("VALUES"):])
	if !strings.HasPrefix(rest, "(") {
		return minidb.Statement{}, fmt.Errorf("%w: missing value list", errInvalidInsert)
	}
	closing := strings.LastIndex(rest, ")")
	if closing < 0 {
		return minidb.Statement{}, fmt.Errorf("%w: unterminated value list", errInvalidInsert)
	}

	var values []any
	for _, value := range splitByCommas(rest[1:closing]) {
		values = append(values, parseValue(value))
	}

	return minidb.Statement{
		Kind:      minidb.Insert,
		TableName: tableName,
		Fields:    fields,
		Values:    values,
	}, nil
}
