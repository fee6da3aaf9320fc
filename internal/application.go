package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrUnknownStorage = errors.New("unknown storage")
)

// RunApp - runs the application.
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

	gameRepo, closeStorage, err := initGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	botService := service.NewBotService(logger)
	gameService := service.NewGameService(gameRepo)
	gamePlayService := service.NewGamePlayService(logger, gameService, botService)

	switch conf.Mode {
	case config.ModeConsole:
		loop := console.New(logger, gamePlayService, os.Stdin, os.Stdout, conf.Game.ComputerFirst)
		if err = loop.Run(ctx); err != nil {
			return fmt.Errorf("console game failed: %w", err)
		}

		return nil
	case config.ModeHTTP:
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gamePlayService)); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		log.Info("Application context canceled, shutting down")

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

// initGameRepository - picks the session storage. The returned func closes it.
func initGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == ":" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage, conf.Redis.SessionTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownStorage, conf.Storage)
	}
}
