package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) error
	SuggestMove(player entity.Cell, board entity.Board) entity.Square
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - plays the computer's optimal move in the game.
func (that *botService) MakeTurn(game *entity.Game) error {
	square := minimax.ComputeBestMove(entity.ComputerMark, game.Board)
	if square == entity.NoMove {
		return ErrNoAvailableMoves
	}

	that.logger.Debug("bot picked a square", "gameID", game.ID, "square", square)

	if err := tictactoe.MakeComputerTurn(game, square); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// SuggestMove - returns the optimal square for player without playing it.
func (that *botService) SuggestMove(player entity.Cell, board entity.Board) entity.Square {
	score, square := minimax.Search(player, board, entity.NoMove)

	that.logger.Debug("suggested a square", "player", player.String(), "square", square, "score", score)

	return square
}
