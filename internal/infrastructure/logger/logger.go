package logger

import (
	"os"

	"github.com/RomainBraquet/surfai-backend/internal/config"
	"github.com/rs/zerolog"
)

// New builds the process logger from the configured level. Unknown levels
// fall back to info.
func New(cfg *config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
