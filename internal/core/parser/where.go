package parser

import (
	"fmt"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var errInvalidCondition = fmt.Errorf("invalid WHERE condition")

// parseWhere recognizes a comma-separated list of "<column> = <value>" and
// "<column> != <value>" terms, implicitly ANDed. No OR, no parenthesized
// sub-expressions, no other operators.
func parseWhere(s string) ([]minidb.Condition, error) {
	var conditions []minidb.Condition
	for _, term := range splitByCommas(s) {
		if term == "" {
			continue
		}

		var (
			operator minidb.Operator
			left     string
			right    string
		)
		if neIdx := strings.Index(term, "!="); neIdx >= 0 {
			operator = minidb.Ne
			left, right = term[:neIdx], term[neIdx+2:]
		} else if eqIdx := strings.Index(term, "="); eqIdx >= 0 {
			operator = minidb.Eq
			left, right = term[:eqIdx], term[eqIdx+1:]
		} else {
			return nil, fmt.Errorf("%w: %q", errInvalidCondition, term)
		}

		columnName := strings.TrimSpace(left)
		if columnName == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidCondition, term)
		}

		conditions = append(conditions, minidb.Condition{
			Column:   columnName,
			Operator: operator,
			Value:    parseValue(right),
		})
	}
	return conditions, nil
}
