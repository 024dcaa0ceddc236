package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-boundedqueue/pkg/settings"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(settings.Logger{LogLevel: tt.level})
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New(settings.Logger{LogLevel: "loud"})
	assert.Nil(t, log)
	assert.ErrorContains(t, err, "parse log level")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.log")
	log, err := New(settings.Logger{
		LogLevel:    "info",
		FileLogName: path,
		MaxSize:     1,
		MaxBackups:  1,
	})
	require.NoError(t, err)

	log.Info("queue created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"queue created"`)
}
