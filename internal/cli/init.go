package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
)

// SetupLogger initializes structured logging on w at the given level and
// makes it the default logger.
func SetupLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads a .env file from the working directory when present.
// A missing file is not an error.
func LoadEnvFile() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// DisableColor strips all styling from lipgloss output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorDisabled reports whether the NO_COLOR convention is in effect.
func ColorDisabled() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
