package parser

import (
	"testing"

	"github.com/RichardKnop/minidb/internal/core/minidb"
)

func TestParse_Select(t *testing.T) {
	t.Parallel()

	testCases := []testCase{
		{
			"SELECT without FROM fails",
			"SELECT id",
			minidb.Statement{},
			errInvalidSelect,
		},
		{
			"SELECT without fields fails",
			"SELECT FROM users",
			minidb.Statement{},
			errInvalidSelect,
		},
		{
			"SELECT with trailing garbage fails",
			"SELECT id FROM users garbage",
			minidb.Statement{},
			errInvalidSelect,
		},
		{
			"SELECT star works",
			"SELECT * FROM users;",
			minidb.Statement{
				Kind:      minidb.Select,
				TableName: "users",
				Fields:    []string{"*"},
			},
			nil,
		},
		{
			"SELECT column list works",
			"select id, name from users",
			minidb.Statement{
				Kind:      minidb.Select,
				TableName: "users",
				Fields:    []string{"id", "name"},
			},
			nil,
		},
		{
			"SELECT with WHERE works",
			"SELECT name FROM users WHERE id = 2, active = TRUE",
			minidb.Statement{
				Kind:      minidb.Select,
				TableName: "users",
				Fields:    []string{"name"},
				Conditions: []minidb.Condition{
					{Column: "id", Operator: minidb.Eq, Value: int64(2)},
					{Column: "active", Operator: minidb.Eq, Value: true},
				},
			},
			nil,
		},
		{
			"SELECT with not-equals condition works",
			"SELECT name FROM users WHERE name != 'Bob'",
			minidb.Statement{
				Kind:      minidb.Select,
				TableName: "users",
				Fields:    []string{"name"},
				Conditions: []minidb.Condition{
					{Column: "name", Operator: minidb.Ne, Value: "Bob"},
				},
			},
			nil,
		},
		{
			"SELECT with condition missing an operator fails",
			"SELECT name FROM users WHERE id",
			minidb.Statement{},
			errInvalidCondition,
		},
		{
			"SELECT with INNER JOIN works",
			"SELECT * FROM users INNER JOIN orders ON users.id = orders.user_id",
			minidb.Statement{
				Kind:      minidb.Select,
				TableName: "users",
				Fields:    []string{"*"},
				Join: &minidb.JoinClause{
					Table:       "orders",
					LeftColumn:  "id",
					RightColumn: "user_id",
				},
			},
			nil,
		},
		{
			"SELECT with WHERE and INNER JOIN works",
			"SELECT * FROM users WHERE active = TRUE INNER JOIN orders ON users.id = orders.user_id",
			minidb.Statement{
				Kind:      minidb.Select,
				TableName: "users",
				Fields:    []string{"*"},
				Conditions: []minidb.Condition{
					{Column: "active", Operator: minidb.Eq, Value: true},
				},
				Join: &minidb.JoinClause{
					Table:       "orders",
					LeftColumn:  "id",
					RightColumn: "user_id",
				},
			},
			nil,
		},
		{
			"SELECT with unqualified join condition fails",
			"SELECT * FROM users INNER JOIN orders ON id = user_id",
			minidb.Statement{},
			errInvalidJoinCondition,
		},
		{
			"SELECT with join condition missing equals fails",
			"SELECT * FROM users INNER JOIN orders ON users.id",
			minidb.Statement{},
			errInvalidJoinCondition,
		},
	}

	runTestCases(t, testCases)
}
