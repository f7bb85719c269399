package logging_test

import (
	"bytes"
	"gregoryjjb/cyclecursor/logging"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want logging.Config
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: logging.Config{Level: zerolog.InfoLevel},
		},
		{
			name: "debug without color",
			env: map[string]string{
				logging.EnvLevel:   "debug",
				logging.EnvNoColor: "true",
			},
			want: logging.Config{Level: zerolog.DebugLevel, NoColor: true},
		},
		{
			name: "bad values fall back",
			env: map[string]string{
				logging.EnvLevel:   "loud",
				logging.EnvNoColor: "sometimes",
			},
			want: logging.Config{Level: zerolog.InfoLevel},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logging.ConfigFromEnv(func(s string) string { return tt.env[s] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatLevel(t *testing.T) {
	plain := logging.FormatLevel(true)
	assert.Equal(t, "| INFO  |", plain("info"))
	assert.Equal(t, "| WARN  |", plain("warn"))
	assert.Equal(t, "| ???   |", plain(nil))

	colored := logging.FormatLevel(false)
	assert.Equal(t, "| \x1b[32mINFO \x1b[0m |", colored("info"))
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(logging.NewConsoleWriter(&buf, true))

	logger.Warn().Int("position", 3).Msg("Cursor read after backing sequence shrank")

	assert.Contains(t, buf.String(), "| WARN  |")
	assert.Contains(t, buf.String(), "Cursor read after backing sequence shrank")
	assert.Contains(t, buf.String(), "position=3")
}

func TestInitialize(t *testing.T) {
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	var buf bytes.Buffer
	logging.Initialize(logging.Config{
		Level:   zerolog.DebugLevel,
		NoColor: true,
		Output:  &buf,
	})

	l := logging.Component("tests")
	l.Trace().Msg("hidden")
	l.Debug().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=tests")
}

func TestGetEnvOr(t *testing.T) {
	env := map[string]string{"SET": "value"}
	getenv := func(s string) string { return env[s] }

	assert.Equal(t, "value", logging.GetEnvOr(getenv, "SET", "fallback"))
	assert.Equal(t, "fallback", logging.GetEnvOr(getenv, "UNSET", "fallback"))
}
