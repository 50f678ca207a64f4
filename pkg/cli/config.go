package cli

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables consulted for defaults. Flags always win over env.
const (
	envLogLevel = "BIMP_LOG_LEVEL"
	envFont     = "BIMP_FONT"
)

// LoadEnv reads a .env file from the working directory if one exists. A
// missing file is not an error; this only supplies defaults.
func LoadEnv() {
	_ = godotenv.Load()
}

// NewLogger builds the console logger used by all commands. The level comes
// from BIMP_LOG_LEVEL (debug, info, warn, error); default is info.
func NewLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv(envLogLevel)) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// defaultFont returns the TTF path from the environment, or empty for the
// built-in bitmap face.
func defaultFont() string {
	return os.Getenv(envFont)
}
