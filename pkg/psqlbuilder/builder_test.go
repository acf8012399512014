package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("zones").Where(squirrel.Eq{"name": "North"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM zones WHERE name = $1", query)
	assert.Equal(t, []interface{}{"North"}, args)
}

func TestNew_SQLiteUsesQuestionPlaceholders(t *testing.T) {
	b := New(SQLite)
	query, _, err := b.Delete("zones").Where(squirrel.Eq{"id": 1}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM zones WHERE id = ?", query)
	assert.False(t, b.SupportsRowLocks())
	assert.True(t, New(Postgres).SupportsRowLocks())
}
