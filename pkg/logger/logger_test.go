package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFileAboveLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("hidden %d", 1)
	log.Warn("visible %s", "warning")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible warning")
	assert.NotContains(t, string(data), "hidden 1")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing %v", "happens")
	assert.NoError(t, log.Close())
}
