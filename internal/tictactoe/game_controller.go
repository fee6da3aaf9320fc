package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// ApplyHumanMove - validates the square and puts the human's mark on it. The
// board is left untouched on error.
func ApplyHumanMove(square entity.Square, board *entity.Board) error {
	if err := validateMove(*board, square); err != nil {
		return err
	}

	return entity.Place(square, entity.HumanMark, board)
}

// MakeHumanTurn - plays the human's square in the session.
func MakeHumanTurn(gameInstance *entity.Game, square entity.Square) error {
	if err := confirmTurn(gameInstance, entity.HumanMark); err != nil {
		return err
	}

	if err := ApplyHumanMove(square, &gameInstance.Board); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(gameInstance, entity.HumanMark, square)

	return nil
}

// MakeComputerTurn - plays a square chosen by the computer in the session.
func MakeComputerTurn(gameInstance *entity.Game, square entity.Square) error {
	if err := confirmTurn(gameInstance, entity.ComputerMark); err != nil {
		return err
	}

	if err := validateMove(gameInstance.Board, square); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := entity.Place(square, entity.ComputerMark, &gameInstance.Board); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(gameInstance, entity.ComputerMark, square)

	return nil
}

// confirmTurn - checks the game is running and waiting for player.
func confirmTurn(gameInstance *entity.Game, player entity.Cell) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if gameInstance.NextPlayer != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// validateMove - checks the square exists and is free.
func validateMove(board entity.Board, square entity.Square) error {
	empty, err := board.IsEmpty(square)
	if err != nil {
		return err
	}

	if !empty {
		return fmt.Errorf("%w: square %d", entity.ErrSquareOccupied, square)
	}

	return nil
}

// updateGameStatus - records the move and checks the game status after it.
func updateGameStatus(gameInstance *entity.Game, player entity.Cell, square entity.Square) {
	gameInstance.Turn++
	gameInstance.LastMove = square
	gameInstance.UpdateGameState(player)
}
