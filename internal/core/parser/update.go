package parser

import (
	"fmt"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var (
	errInvalidUpdate    = fmt.Errorf("invalid UPDATE syntax")
	errInvalidSetClause = fmt.Errorf("invalid SET assignment")
)

// parseUpdate recognizes
//
//	UPDATE <name> SET <col> = <value>, ... [WHERE <cond,...>]
func (p *Parser) parseUpdate(query string) (minidb.Statement, error) {
	rest := strings.TrimSpace(query[len("UPDATE"):])

	tableName, rest := takeIdentifier(rest)
	if tableName == "" {
		return minidb.Statement{}, fmt.Errorf("%w: %w", errInvalidUpdate, errEmptyTableName)
	}

	rest = strings.TrimSpace(rest)
	setIdx := indexWord(rest, "SET")
	if setIdx != 0 {
		return minidb.Statement{}, fmt.Errorf("%w: missing SET clause", errInvalidUpdate)
	}
	rest = rest[len("SET"):]

	setClause := rest
	var conditions []minidb.Condition
	if whereIdx := indexWord(rest, "WHERE"); whereIdx >= 0 {
		setClause = rest[:whereIdx]
		parsed, err := parseWhere(rest[whereIdx+len("WHERE"):])
		if err != nil {
			return minidb.Statement{}, err
		}
		conditions = parsed
	}

	updates := make(map[string]any)
	for _, assignment := range splitByCommas(setClause) {
		if assignment == "" {
			continue
		}
		eqIdx := strings.Index(assignment, "=")
		if eqIdx < 0 {
			return minidb.Statement{}, fmt.Errorf("%w: %q", errInvalidSetClause, assignment)
		}
		columnName := strings.TrimSpace(assignment[:eqIdx])
		if columnName == "" {
			return minidb.Statement{}, fmt.Errorf("%w: %q", errInvalidSetClause, assignment)
		}
		updates[columnName] = parseValue(assignment[eqIdx+1:])
	}
	if len(updates) == 0 {
		return minidb.Statement{}, fmt.Errorf("%w: empty SET clause", errInvalidUpdate)
	}

	return minidb.Statement{
		Kind:       minidb.Update,
		TableName:  tableName,
		Updates:    updates,
		Conditions: conditions,
	}, nil
}
