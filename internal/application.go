package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/gametree"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if conf.TreeExport.Path != "" {
		if err := ExportTree(conf.TreeExport.Path, conf.TreeExport.Depth, conf.ComputerFirst()); err != nil {
			return fmt.Errorf("could not export game tree: %w", err)
		}
		log.Info("Game tree exported", "path", conf.TreeExport.Path, "depth", conf.TreeExport.Depth)
	}

	session := usecase.NewSession(logger, conf)
	log.Info("Starting console session", "session_id", session.ID(), "first_player", conf.FirstPlayer, "undo_policy", conf.UndoPolicy)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- console.New(logger, session, in, out).Run(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Session ended", "outcome", session.Outcome().String(), "moves", len(session.History()))
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// ExportTree writes the game tree from the empty board, limited to depth plies, as Graphviz DOT.
func ExportTree(path string, depth int, computerFirst bool) error {
	mover := entity.PlayerX
	if computerFirst {
		mover = entity.PlayerO
	}

	root := gametree.NewRoot(entity.Board{})
	defer root.Release()

	gametree.ExpandDepth(root, mover, depth)

	dot, err := gametree.ToDot(root)
	if err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}

	if err = os.WriteFile(path, []byte(dot), 0o600); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}

	return nil
}
