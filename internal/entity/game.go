package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game is a single session of a human against the computer.
type Game struct {
	ID         string `json:"id"`
	Board      Board  `json:"board"`
	Turn       int    `json:"turn"`
	NextPlayer Cell   `json:"next_player"`
	Winner     string `json:"winner"`
	Status     string `json:"status"`
	LastMove   Square `json:"last_move,omitempty"`
}

func NewGame(id string, computerFirst bool) *Game {
	game := &Game{ID: id}
	game.Reset(computerFirst)

	return game
}

// Reset - puts the session back to an empty board, keeping its ID.
func (that *Game) Reset(computerFirst bool) {
	that.Board = Board{}
	that.Turn = 0
	that.Winner = ""
	that.Status = StatusOngoing
	that.LastMove = NoMove
	that.NextPlayer = HumanMark

	if computerFirst {
		that.NextPlayer = ComputerMark
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsHumanTurn() bool {
	return that.IsOngoing() && that.NextPlayer == HumanMark
}

func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.NextPlayer == ComputerMark
}

// DetermineGameResult - returns the winning mark, PlayerTie for a full board
// without a winner, or "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	if winner := that.Board.Winner(); winner != EmptyCell {
		return winner.String()
	}

	if that.Board.IsFull() {
		return PlayerTie
	}

	return ""
}

// UpdateGameState - finishes the game on a win or tie, otherwise passes the
// turn to the opponent of the player who just moved.
func (that *Game) UpdateGameState(lastPlayer Cell) {
	switch result := that.DetermineGameResult(); result {
	case PlayerX.String(), PlayerO.String(), PlayerTie:
		that.Winner = result
		that.Status = StatusFinished
		that.NextPlayer = EmptyCell
	default:
		that.Status = StatusOngoing
		that.NextPlayer = lastPlayer.Opponent()
	}
}
