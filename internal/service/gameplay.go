package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type GamePlayService interface {
	NewGame(ctx context.Context, computerFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	Restart(ctx context.Context, gameID string, computerFirst bool) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, gameID string, square entity.Square) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (entity.Square, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		gameService: gameService,
		botService:  botService,
	}
}

// NewGame - creates a session and lets the computer open when asked to.
func (that *gamePlayService) NewGame(ctx context.Context, computerFirst bool) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, computerFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	if err = that.openGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game started", "gameID", game.ID, "computerFirst", computerFirst)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// Restart - clears the board of an ongoing session.
func (that *gamePlayService) Restart(ctx context.Context, gameID string, computerFirst bool) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.Reset(computerFirst)

	if err = that.openGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game restarted", "gameID", game.ID, "computerFirst", computerFirst)

	return game, nil
}

// MakeTurn - plays the human's square and the computer's reply. A finished
// game is removed from storage and returned in its final state.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, square entity.Square) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.MakeHumanTurn(game, square); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsComputerTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("failed to make computer turn: %w", err)
		}
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner, "turn", game.Turn)
		that.CleanupGame(ctx, game)

		return game, nil
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// Hint - returns the square the engine would play for the human.
func (that *gamePlayService) Hint(ctx context.Context, gameID string) (entity.Square, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsFinished() {
		return entity.NoMove, apperror.ErrGameFinished
	}

	if !game.IsHumanTurn() {
		return entity.NoMove, apperror.ErrNotYourTurn
	}

	return that.botService.SuggestMove(entity.HumanMark, game.Board), nil
}

func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}
}

// openGame - plays the computer's first move if it opens, then stores the game.
func (that *gamePlayService) openGame(ctx context.Context, game *entity.Game) error {
	if game.IsComputerTurn() {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
