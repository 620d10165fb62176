package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	for _, tc := range []struct {
		level string
		dev   bool
		debug bool
	}{
		{"debug", false, true},
		{"info", false, false},
		{"warn", true, false},
		{"DEBUG", true, true},
	} {
		logger, err := New(tc.level, tc.dev)
		require.NoError(t, err, tc.level)
		assert.Equal(t, tc.debug, logger.Core().Enabled(zap.DebugLevel), tc.level)
		assert.True(t, logger.Core().Enabled(zap.ErrorLevel), tc.level)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	logger, err := New("loud", false)
	require.Error(t, err)
	assert.Nil(t, logger)
	assert.Contains(t, err.Error(), "logging:")
}
