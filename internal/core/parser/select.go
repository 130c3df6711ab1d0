package parser

import (
	"fmt"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var (
	errInvalidSelect        = fmt.Errorf("invalid SELECT syntax")
	errInvalidJoinCondition = fmt.Errorf("invalid JOIN condition")
)

// parseSelect recognizes
//
//	SELECT <col,...|*> FROM <name> [WHERE <cond,...>]
//	    [INNER JOIN <name> ON <t1>.<c1> = <t2>.<c2>]
//
// with that fixed clause order, one join at most, inner equi-join only.
func (p *Parser) parseSelect(query string) (minidb.Statement, error) {
	rest := strings.TrimSpace(query[len("SELECT"):])

	fromIdx := indexWord(rest, "FROM")
	if fromIdx < 0 {
		return minidb.Statement{}, fmt.Errorf("%w: missing FROM clause", errInvalidSelect)
	}
	columnsStr := strings.TrimSpace(rest[:fromIdx])
	if columnsStr == "" {
		return minidb.Statement{}, fmt.Errorf("%w: missing column list", errInvalidSelect)
	}

	rest = strings.TrimSpace(rest[fromIdx+len("FROM"):])
	tableName, rest := takeIdentifier(rest)
	if tableName == "" {
		return minidb.Statement{}, fmt.Errorf("%w: %w", errInvalidSelect, errEmptyTableName)
	}

	var fields []string
	if columnsStr == "*" {
		fields = []string{"*"}
	} else {
		for _, columnName := range strings.Split(columnsStr, ",") {
			fields = append(fields, strings.TrimSpace(columnName))
		}
	}

	var join *minidb.JoinClause
	joinIdx := indexWord(rest, "INNER JOIN")
	if joinIdx >= 0 {
		aJoin, err := parseJoin(rest[joinIdx+len("INNER JOIN"):])
		if err != nil {
			return minidb.Statement{}, err
		}
		join = aJoin
		rest = rest[:joinIdx]
	}

	var conditions []minidb.Condition
	whereSegment := strings.TrimSpace(rest)
	if whereSegment != "" {
		whereIdx := indexWord(whereSegment, "WHERE")
		if whereIdx != 0 {
			return minidb.Statement{}, fmt.Errorf("%w: unexpected %q", errInvalidSelect, whereSegment)
		}
		parsed, err := parseWhere(whereSegment[len("WHERE"):])
		if err != nil {
			return minidb.Statement{}, err
		}
		conditions = parsed
	}

	return minidb.Statement{
		Kind:       minidb.Select,
		TableName:  tableName,
		Fields:     fields,
		Conditions: conditions,
		Join:       join,
	}, nil
}

// parseJoin recognizes "<name> ON <t1>.<c1> = <t2>.<c2>".
func parseJoin(s string) (*minidb.JoinClause, error) {
	s = strings.TrimSpace(s)

	joinTable, rest := takeIdentifier(s)
	if joinTable == "" {
		return nil, fmt.Errorf("%w: missing join table", errInvalidJoinCondition)
	}

	onIdx := indexWord(rest, "ON")
	if onIdx < 0 {
		return nil, fmt.Errorf("%w: missing ON clause", errInvalidJoinCondition)
	}
	condition := rest[onIdx+len("ON"):]

	sides := strings.Split(condition, "=")
	if len(sides) != 2 {
		return nil, errInvalidJoinCondition
	}
	left := strings.Split(strings.TrimSpace(sides[0]), ".")
	right := strings.Split(strings.TrimSpace(sides[1]), ".")
	if len(left) != 2 || len(right) != 2 {
		return nil, errInvalidJoinCondition
	}

	return &minidb.JoinClause{
		Table:       joinTable,
		LeftColumn:  left[1],
		RightColumn: right[1],
	}, nil
}
