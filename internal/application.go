package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playothello/othello-client/internal/bootstrap"
	"github.com/playothello/othello-client/internal/config"
	"github.com/playothello/othello-client/internal/terminal"
)

var ErrNicknameRequired = errors.New("nickname is not set in config")

// RunApp - runs the application: registers the player identity and
// hands control to the terminal UI.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Nickname == "" {
		return ErrNicknameRequired
	}

	boot := bootstrap.NewClient(logger, conf.Server.GetHTTPBaseURL())

	player, err := boot.CreatePlayer(ctx, conf.Nickname)
	if err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}

	term, err := terminal.New(logger, conf.Server.GetWSBaseURL(), boot, player)
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}

	log.Info("Entering lobby", "player", player.Name)

	if err = term.Run(ctx); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}
