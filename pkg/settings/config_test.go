package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				Queue:  Queue{Capacity: 10},
				Logger: Logger{LogLevel: "debug", MaxSize: 10},
			},
		},
		{
			name: "empty_log_level_allowed",
			cfg:  Config{Queue: Queue{Capacity: 1}},
		},
		{
			name:    "zero_capacity",
			cfg:     Config{Queue: Queue{Capacity: 0}},
			wantErr: true,
		},
		{
			name:    "negative_capacity",
			cfg:     Config{Queue: Queue{Capacity: -3}},
			wantErr: true,
		},
		{
			name: "unknown_log_level",
			cfg: Config{
				Queue:  Queue{Capacity: 1},
				Logger: Logger{LogLevel: "verbose"},
			},
			wantErr: true,
		},
		{
			name: "negative_rotation",
			cfg: Config{
				Queue:  Queue{Capacity: 1},
				Logger: Logger{MaxBackups: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQueue_Validate(t *testing.T) {
	assert.NoError(t, Queue{Capacity: 1}.Validate())
	assert.ErrorContains(t, Queue{}.Validate(), "invalid queue config")
}
