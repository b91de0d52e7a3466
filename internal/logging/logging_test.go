package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnableWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	t.Cleanup(disable)
	Enable(path)
	require.True(t, Enabled)

	Counter.WithField("path", "/tmp/x").Debug("counted")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "counted")
	assert.Contains(t, string(data), "component=counter")
}

func TestDisabledDiscards(t *testing.T) {
	disable()
	assert.False(t, Enabled)
	// must not panic or write anywhere
	Debug.Debug("dropped")
}
