package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", operation("  select id from zones"))
	assert.Equal(t, "INSERT", operation("INSERT INTO appointments (id) VALUES ($1)"))
	assert.Equal(t, "UNKNOWN", operation("   "))
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	db := &DB{}
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx := &metricsTx{}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}
