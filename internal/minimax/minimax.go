// Package minimax picks moves by exhaustive game-tree search. O maximizes and
// X minimizes the same evaluation; the whole tree is explored on every call.
package minimax

import "github.com/rocketscienceinc/tictactoe-minimax/internal/entity"

// Score is the value of a resolved position from O's point of view.
type Score int

const (
	WinScore  Score = 10
	LossScore Score = -10
	DrawScore Score = 0
)

// Evaluate - returns the static score of a board: +10 when O has won, -10
// when X has won and 0 otherwise.
func Evaluate(board entity.Board) Score {
	if entity.IsWinning(entity.PlayerO, board) {
		return WinScore
	}

	if entity.IsWinning(entity.PlayerX, board) {
		return LossScore
	}

	return DrawScore
}

// Search - returns the optimal score and move for player on board, assuming
// both sides play perfectly from here. precedingMove is returned as the move
// when the board is already won. A full board without a winner yields
// DrawScore and entity.NoMove.
func Search(player entity.Cell, board entity.Board, precedingMove entity.Square) (Score, entity.Square) {
	if entity.IsTerminal(board) {
		return Evaluate(board), precedingMove
	}

	bestScore, bestMove := DrawScore, entity.NoMove

	for _, square := range board.EmptySquares() {
		// board is a value, so next is this branch's private copy
		next := board
		_ = entity.Place(square, player, &next) // square comes from EmptySquares

		score, _ := Search(player.Opponent(), next, square)

		if bestMove == entity.NoMove || improves(player, score, bestScore) {
			bestScore, bestMove = score, square
		}
	}

	return bestScore, bestMove
}

// ComputeBestMove - returns only the move part of a search from scratch.
func ComputeBestMove(player entity.Cell, board entity.Board) entity.Square {
	_, move := Search(player, board, entity.NoMove)
	return move
}

// improves is strict so the first extremal move in enumeration order wins.
func improves(player entity.Cell, score, best Score) bool {
	if player == entity.PlayerO {
		return score > best
	}

	return score < best
}
