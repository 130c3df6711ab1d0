package parser

import (
	"fmt"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var errInvalidDelete = fmt.Errorf("invalid DELETE syntax")

// parseDelete recognizes
//
//	DELETE FROM <name> [WHERE <cond,...>]
func (p *Parser) parseDelete(query string) (minidb.Statement, error) {
	rest := strings.TrimSpace(query[len("DELETE FROM"):])

	tableName, rest := takeIdentifier(rest)
	if tableName == "" {
		return minidb.Statement{}, fmt.Errorf("%w: %w", errInvalidDelete, errEmptyTableName)
	}

	var conditions []minidb.Condition
	rest = strings.TrimSpace(rest)
	if rest != "" {
		if indexWord(rest, "WHERE") != 0 {
			return minidb.Statement{}, fmt.Errorf("%w: unexpected %q", errInvalidDelete, rest)
		}
		parsed, err := parseWhere(rest[len("WHERE"):])
		if err != nil {
			return minidb.Statement{}, err
		}
		conditions = parsed
	}

	return minidb.Statement{
		Kind:       minidb.Delete,
		TableName:  tableName,
		Conditions: conditions,
	}, nil
}
