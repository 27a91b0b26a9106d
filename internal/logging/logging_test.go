package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		level string
		want  zap.AtomicLevel
	}{
		{"production", "production", "warn", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"prod alias", "PROD", "", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"development", "development", "debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.mode, tt.level)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want.Level()))
			assert.False(t, log.Core().Enabled(tt.want.Level()-1))
		})
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.ErrorContains(t, err, "log level")
}
