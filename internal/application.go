package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connect4-bot/internal/config"
	"github.com/rocketscienceinc/connect4-bot/internal/repository"
	"github.com/rocketscienceinc/connect4-bot/internal/repository/storage"
	"github.com/rocketscienceinc/connect4-bot/internal/service"
	"github.com/rocketscienceinc/connect4-bot/internal/transport/rest"
	"github.com/rocketscienceinc/connect4-bot/internal/usecase"
)

var ErrAddrNotFound = errors.New("game service base address is empty")

// RunApp - runs the bot until its game is finished or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config) error {
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

	if conf.BaseAddress == "" {
		return ErrAddrNotFound
	}

	client, err := rest.NewClient(new(http.Client), conf.BaseAddress)
	if err != nil {
		return fmt.Errorf("could not create game service client: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, client,
		service.NewMoveSelector(),
		service.NewPresenter(os.Stdout),
		usecase.Settings{
			Credentials:      conf.Credentials(),
			PollInterval:     conf.PollInterval,
			MaxFetchFailures: conf.MaxFetchFailures,
		},
	)

	if conf.Journal.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Journal.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to journal storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close journal storage", "error", err)
			}
		}()

		gameManager.SetJournal(repository.NewGameRepository(redisStorage.Connection))
		log.Info("Journaling game snapshots", "addr", conf.Journal.GetRedisAddr())
	}

	log.Info("Starting bot", "base_address", conf.BaseAddress, "team", conf.TeamName)

	if err = gameManager.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Bot stopped before the game finished")
			return nil
		}

		return fmt.Errorf("bot run failed: %w", err)
	}

	log.Info("Game finished, shutting down")

	return nil
}
