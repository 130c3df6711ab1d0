package minidb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTable(t *testing.T) {
	t.Parallel()

	aStorage := newStubStorage()
	aDatabase := newTestDatabase(t, aStorage)

	result, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      CreateTable,
		TableName: "users",
		Columns: []Column{
			{Name: "id", Kind: Int, Constraints: []string{"PRIMARY", "KEY"}},
			{Name: "email", Kind: Text, Constraints: []string{"UNIQUE"}},
			{Name: "name", Kind: Text, Constraints: []string{}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `Table "users" created successfully`, result.Message)

	// Schema and an empty snapshot are persisted right away.
	assert.Equal(t, []SchemaColumn{
		{Name: "id", Type: "INT", Constraints: []string{"PRIMARY", "KEY"}},
		{Name: "email", Type: "TEXT", Constraints: []string{"UNIQUE"}},
		{Name: "name", Type: "TEXT", Constraints: []string{}},
	}, aStorage.schemas["users"])
	assert.Equal(t, Snapshot{Rows: map[string]Row{}}, aStorage.data["users"])
}

func TestCreateTable_AlreadyExists(t *testing.T) {
	t.Parallel()

	aDatabase := newTestDatabase(t, newStubStorage())
	createUsersTable(t, aDatabase)

	_, err := aDatabase.ExecuteStatement(context.Background(), Statement{
		Kind:      CreateTable,
		TableName: "users",
		Columns: []Column{
			{Name: "id", Kind: Int, Constraints: []string{"PRIMARY", "KEY"}},
		},
	})
	assert.ErrorIs(t, err, errTableAlreadyExists)
}
