package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Config struct {
	Queue  Queue  `mapstructure:"queue"`
	Logger Logger `mapstructure:"logger"`
}

// Queue is the configuration for a bounded queue
type Queue struct {
	Capacity int `mapstructure:"capacity" validate:"gt=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// Validate checks the queue section on its own.
func (q Queue) Validate() error {
	if err := validate.Struct(q); err != nil {
		return errors.Wrap(err, "invalid queue config")
	}
	return nil
}
