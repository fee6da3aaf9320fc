package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestApplyHumanMove(t *testing.T) {
	t.Run("Places X on a free square", func(t *testing.T) {
		// Given: an empty board
		var board entity.Board

		// When: the human picks square 5
		err := ApplyHumanMove(5, &board)

		// Then: X is in the center
		require.NoError(t, err)
		assert.Equal(t, entity.Board{{e, e, e}, {e, x, e}, {e, e, e}}, board)
	})

	t.Run("Error on occupied square", func(t *testing.T) {
		// Given: a board where O holds square 5
		board := entity.Board{{e, e, e}, {e, o, e}, {e, e, e}}
		original := board

		// When: the human picks square 5
		err := ApplyHumanMove(5, &board)

		// Then: the move is rejected as an invalid square and the board is unchanged
		require.ErrorIs(t, err, entity.ErrSquareOccupied)
		require.ErrorIs(t, err, entity.ErrInvalidSquare)
		assert.Equal(t, original, board)
	})

	t.Run("Error on out of range square", func(t *testing.T) {
		var board entity.Board

		for _, square := range []entity.Square{-1, 0, 10, 20} {
			err := ApplyHumanMove(square, &board)

			assert.ErrorIs(t, err, entity.ErrInvalidSquare, "square %d", square)
		}

		assert.Equal(t, entity.Board{}, board)
	})
}

func TestMakeHumanTurn(t *testing.T) {
	t.Run("MakeHumanTurn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", false)

		// When: the human plays square 1
		err := MakeHumanTurn(game, 1)
		require.NoError(t, err)

		// Then: the game state reflects the move and passes the turn
		expectedGame := &entity.Game{
			ID:         "123",
			Board:      entity.Board{{x, e, e}, {e, e, e}, {e, e, e}},
			Turn:       1,
			NextPlayer: entity.ComputerMark,
			Status:     entity.StatusOngoing,
			LastMove:   1,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the computer holds square 1
		game := entity.NewGame("123", true)
		require.NoError(t, MakeComputerTurn(game, 1))
		expectedGame := *game

		// When: the human tries the same square
		err := MakeHumanTurn(game, 1)

		// Then: ErrSquareOccupied is returned and the game is unchanged
		require.ErrorIs(t, err, entity.ErrSquareOccupied)
		require.Equal(t, &expectedGame, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a game the computer opens
		game := entity.NewGame("123", true)

		// When: the human moves first
		err := MakeHumanTurn(game, 1)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, entity.NewGame("123", true), game)
	})

	t.Run("Invalid square", func(t *testing.T) {
		game := entity.NewGame("123", false)

		err := MakeHumanTurn(game, 20)

		assert.ErrorIs(t, err, entity.ErrInvalidSquare)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a game X has already won
		game := &entity.Game{
			Board:      entity.Board{{x, x, x}, {e, o, e}, {e, o, e}},
			Status:     entity.StatusFinished,
			NextPlayer: e,
			Winner:     "X",
		}

		// When: the human tries to move again
		err := MakeHumanTurn(game, 4)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X holds 1 and 2
		game := &entity.Game{
			Board:      entity.Board{{x, x, e}, {o, o, e}, {e, e, e}},
			Turn:       4,
			Status:     entity.StatusOngoing,
			NextPlayer: x,
		}

		// When: the human plays 3
		require.NoError(t, MakeHumanTurn(game, 3))

		// Then: X wins
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, 5, game.Turn)
		assert.Equal(t, entity.Square(3), game.LastMove)
	})
}

func TestMakeComputerTurn(t *testing.T) {
	t.Run("Last square ends in a tie", func(t *testing.T) {
		// Given: only square 9 is left
		game := &entity.Game{
			Board:      entity.Board{{x, o, x}, {o, x, o}, {o, x, e}},
			Turn:       8,
			Status:     entity.StatusOngoing,
			NextPlayer: o,
		}

		// When: the computer plays it
		require.NoError(t, MakeComputerTurn(game, 9))

		// Then: the board is full without a winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerTie, game.Winner)
		assert.Equal(t, entity.EmptyCell, game.NextPlayer)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		game := entity.NewGame("123", false)

		err := MakeComputerTurn(game, 5)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Error on occupied square", func(t *testing.T) {
		game := entity.NewGame("123", false)
		require.NoError(t, MakeHumanTurn(game, 5))

		err := MakeComputerTurn(game, 5)

		require.ErrorIs(t, err, entity.ErrSquareOccupied)
	})
}
