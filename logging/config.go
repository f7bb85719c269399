package logging

import (
	"io"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	EnvLevel   = "CYCLECURSOR_LOG_LEVEL"
	EnvNoColor = "CYCLECURSOR_NO_COLOR"
)

type Config struct {
	Level   zerolog.Level
	NoColor bool

	// Output defaults to stdout
	Output io.Writer
}

// GetEnvOr looks up key with getenv and falls back when it is empty
func GetEnvOr(getenv func(string) string, key string, fallback string) string {
	value := getenv(key)
	if value == "" {
		value = fallback
	}
	return value
}

// ConfigFromEnv builds a Config from environment lookups, usually os.Getenv.
// Unknown levels fall back to info.
func ConfigFromEnv(getenv func(string) string) Config {
	level, err := zerolog.ParseLevel(GetEnvOr(getenv, EnvLevel, "info"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	noColor, _ := strconv.ParseBool(GetEnvOr(getenv, EnvNoColor, "false"))

	return Config{
		Level:   level,
		NoColor: noColor,
	}
}
