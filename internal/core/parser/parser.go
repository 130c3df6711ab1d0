package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

var (
	errUnsupportedQueryType = fmt.Errorf("unsupported query type")
	errEmptyTableName       = fmt.Errorf("table name cannot be empty")
)

// Parser recognizes the fixed five-statement grammar: CREATE TABLE, INSERT
// INTO, SELECT, UPDATE and DELETE FROM. Dispatch is by leading keyword,
// case-insensitive, with trailing semicolons stripped. Anything else is a
// syntax error.
type Parser struct{}

func New() *Parser {
	return new(Parser)
}

func (p *Parser) Parse(ctx context.Context, query string) (minidb.Statement, error) {
	query = strings.TrimSpace(query)
	query = strings.TrimRight(query, ";")

	upper := strings.ToUpper(query)
	switch {
	case strings.HasPrefix(upper, "CREATE TABLE"):
		return p.parseCreateTable(query)
	case strings.HasPrefix(upper, "INSERT INTO"):
		return p.parseInsert(query)
	case strings.HasPrefix(upper, "SELECT"):
		return p.parseSelect(query)
	case strings.HasPrefix(upper, "UPDATE"):
		return p.parseUpdate(query)
	case strings.HasPrefix(upper, "DELETE FROM"):
		return p.parseDelete(query)
	}
	return minidb.Statement{}, fmt.Errorf("%w: %q", errUnsupportedQueryType, query)
}

// parseValue recognizes a value literal. Priority order: NULL, TRUE/FALSE,
// quoted text (quotes stripped, no escape processing), integer, float,
// otherwise the raw token as a string.
func parseValue(s string) any {
	s = strings.TrimSpace(s)

	switch strings.ToUpper(s) {
	case "NULL":
		return nil
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	if isInteger(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func isInteger(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// splitByCommas splits on commas while tracking parenthesis depth, so a
// parenthesized sub-list is not split. It does not track quote state, a
// quoted string containing a comma will be mis-split.
func splitByCommas(s string) []string {
	var (
		result  []string
		current strings.Builder
		depth   int
	)
	for _, char := range s {
		switch {
		case char == '(':
			depth++
		case char == ')':
			depth--
		case char == ',' && depth == 0:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(char)
	}
	if current.Len() > 0 {
		result = append(result, strings.TrimSpace(current.String()))
	}
	return result
}

// takeIdentifier splits off a leading run of word characters.
func takeIdentifier(s string) (string, string) {
	var i int
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// indexWord finds the first case-insensitive occurrence of word delimited by
// non-word characters or string boundaries, -1 if absent.
func indexWord(s, word string) int {
	var (
		upper = strings.ToUpper(s)
		from  = 0
	)
	word = strings.ToUpper(word)
	for {
		i := strings.Index(upper[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		before := i == 0 || !isWordChar(upper[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(upper) || !isWordChar(upper[afterIdx])
		if before && after {
			return i
		}
		from = i + 1
	}
}
