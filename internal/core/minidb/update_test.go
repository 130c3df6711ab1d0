package minidb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"name": "Robert"},
		Conditions: []Condition{
			{Column: "id", Operator: Eq, Value: int64(2)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsAffected)

	selected, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Select,
		TableName: "users",
		Fields:    []string{"name"},
		Conditions: []Condition{
			{Column: "id", Operator: Eq, Value: int64(2)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Row{{"name": "Robert"}}, selected.Rows)
}

func TestUpdate_AllRows(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"active": false},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowsAffected)
}

func TestUpdate_UnknownColumn(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"nickname": "Al"},
	})
	assert.ErrorIs(t, err, errUnknownColumn)
}

func TestUpdate_TypeMismatch(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"active": "yes"},
	})
	assert.ErrorIs(t, err, errTypeMismatch)
}

func TestUpdate_ToOwnValueAllowed(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	// Re-assigning a row's own unique value is not a conflict.
	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"email": "a@x.com"},
		Conditions: []Condition{
			{Column: "id", Operator: Eq, Value: int64(1)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowsAffected)
}

func TestUpdate_DuplicateValueLeavesRowsIntact(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"email": "b@x.com"},
		Conditions: []Condition{
			{Column: "id", Operator: Eq, Value: int64(1)},
		},
	})
	assert.ErrorIs(t, err, errDuplicateValue)

	// Both rows keep their prior values.
	selected, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Select,
		TableName: "users",
		Fields:    []string{"id", "email"},
		Conditions: []Condition{
			{Column: "id", Operator: Ne, Value: int64(3)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{"id": int64(1), "email": "a@x.com"},
		{"id": int64(2), "email": "b@x.com"},
	}, selected.Rows)
}

func TestUpdate_NullPrimaryKey(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"id": nil},
		Conditions: []Condition{
			{Column: "id", Operator: Eq, Value: int64(1)},
		},
	})
	assert.ErrorIs(t, err, errNullPrimaryKey)
}

func TestUpdate_MatchesNothing(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)
	seedUsers(t, aDatabase)

	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      Update,
		TableName: "users",
		Updates:   map[string]any{"name": "Nobody"},
		Conditions: []Condition{
			{Column: "id", Operator: Eq, Value: int64(99)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowsAffected)
}
