package logging_test

import (
	"testing"

	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/conic/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"info":  zapcore.InfoLevel,
		"DEBUG": zapcore.Level(-1),
		"trace": zapcore.Level(-2),
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	log, sync, err := logging.New("debug")
	require.NoError(t, err)
	assert.True(t, log.V(logging.DEBUG).Enabled())
	assert.False(t, log.V(logging.TRACE).Enabled())
	_ = sync()

	log, _, err = logging.New("info")
	require.NoError(t, err)
	assert.False(t, log.V(logging.DEBUG).Enabled())

	_, _, err = logging.New("loud")
	require.Error(t, err)
}

// TestVerbosityMapping checks V(n) lands on zap level −n.
func TestVerbosityMapping(t *testing.T) {
	core, logs := observer.New(zapcore.Level(-logging.TRACE))
	log := zapr.NewLogger(zap.New(core))

	log.Info("info")
	log.V(logging.DEBUG).Info("debug", "k", 1)
	log.V(logging.TRACE).Info("trace")
	log.V(logging.TRACE + 1).Info("dropped")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.Level(-logging.DEBUG), entries[1].Level)
	assert.Equal(t, int64(1), entries[1].ContextMap()["k"])
}

func TestNewTestLogger(t *testing.T) {
	log := logging.NewTestLogger()
	assert.True(t, log.V(logging.TRACE).Enabled())
}
