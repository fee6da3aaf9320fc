package entity

import (
	"errors"
	"fmt"
)

// Cell is the content of a single board cell.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

// HumanMark and ComputerMark fix who plays which side. The search engine only
// depends on this through the scoring polarity: O is the maximizer.
const (
	HumanMark    = PlayerX
	ComputerMark = PlayerO
)

const (
	BoardSize = 3

	// NoMove is the absent move, used before any move has been made.
	NoMove Square = 0
)

var (
	ErrInvalidSquare     = errors.New("square should be between 1-9")
	ErrInvalidCoordinate = errors.New("row and column should be between 0-2")
	ErrSquareOccupied    = fmt.Errorf("%w: square is already occupied", ErrInvalidSquare)
	ErrUnknownCell       = errors.New("unknown cell value")

	WinLines = [8][3]Square{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
		{1, 5, 9},
		{3, 5, 7},
	}
)

// Square is a 1-indexed cell identifier in row-major order.
type Square int

// Board is a 3x3 grid. It is a value type: assigning a Board copies it.
type Board [BoardSize][BoardSize]Cell

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = EmptyCell
	case "X":
		*that = PlayerX
	case "O":
		*that = PlayerO
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCell, text)
	}

	return nil
}

// SquareToRowCol maps a square 1-9 onto its row and column.
func SquareToRowCol(square Square) (int, int, error) {
	if square < 1 || square > BoardSize*BoardSize {
		return 0, 0, fmt.Errorf("%w: got %d", ErrInvalidSquare, square)
	}

	index := int(square) - 1

	return index / BoardSize, index % BoardSize, nil
}

// RowColToSquare maps a row and column 0-2 onto its square.
func RowColToSquare(row, col int) (Square, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoMove, fmt.Errorf("%w: got (%d, %d)", ErrInvalidCoordinate, row, col)
	}

	return Square(row*BoardSize + col + 1), nil
}

// IsEmpty reports whether the square is unoccupied.
func (that Board) IsEmpty(square Square) (bool, error) {
	row, col, err := SquareToRowCol(square)
	if err != nil {
		return false, err
	}

	return that[row][col] == EmptyCell, nil
}

// EmptySquares lists the unoccupied squares in row-major order.
func (that Board) EmptySquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for row := range that {
		for col, cell := range that[row] {
			if cell == EmptyCell {
				squares = append(squares, Square(row*BoardSize+col+1))
			}
		}
	}

	return squares
}

// IsFull reports whether no square is left to play.
func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Winner returns the mark that completed a line, or EmptyCell.
func (that Board) Winner() Cell {
	switch {
	case IsWinning(PlayerX, that):
		return PlayerX
	case IsWinning(PlayerO, that):
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Board) at(square Square) Cell {
	index := int(square) - 1
	return that[index/BoardSize][index%BoardSize]
}

// Place writes the player's mark into the board. Occupancy is not checked.
func Place(square Square, player Cell, board *Board) error {
	row, col, err := SquareToRowCol(square)
	if err != nil {
		return err
	}

	board[row][col] = player

	return nil
}

// IsWinning reports whether any of the 8 lines is fully held by player.
func IsWinning(player Cell, board Board) bool {
	if player == EmptyCell {
		return false
	}

	for _, line := range WinLines {
		if board.at(line[0]) == player && board.at(line[1]) == player && board.at(line[2]) == player {
			return true
		}
	}

	return false
}

// IsTerminal reports whether either player has won. A full board without a
// winner is not terminal here.
func IsTerminal(board Board) bool {
	return IsWinning(PlayerX, board) || IsWinning(PlayerO, board)
}
