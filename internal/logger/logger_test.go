package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for mode, debug := range map[string]bool{"dev": true, "prod": false, "test": false} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		assert.Equal(t, debug, l.SugaredLogger.Desugar().Core().Enabled(zap.DebugLevel), mode)
	}

	l, err := New("test")
	require.NoError(t, err)
	assert.False(t, l.SugaredLogger.Desugar().Core().Enabled(zap.InfoLevel))
	assert.True(t, l.SugaredLogger.Desugar().Core().Enabled(zap.WarnLevel))
}

func TestReplaceAndNamed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := Replace(FromCore(core))

	Log.Named("storage").Warn("ignoring malformed value", "key", "coach-goals")
	Log.Debug("dropped")
	restore()
	Log.Info("after restore")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "storage", entries[0].LoggerName)
	assert.Equal(t, "coach-goals", entries[0].ContextMap()["key"])
}
