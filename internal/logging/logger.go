package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger writing to stdout. Once the database is
// up, main swaps the default for a MultiHandler that pairs this stream with
// the Postgres error sink, so early startup failures still reach stdout.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
