package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
}

// New returns a context bounded by maxWaitDuration and a suite with a debug
// JSON logger and the default configuration.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := &config.Config{
		LogLevel:    "debug",
		FirstPlayer: config.FirstPlayerHuman,
		UndoPolicy:  config.UndoPolicyRound,
		TreeExport:  config.TreeExport{Depth: 2},
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
	}
}
