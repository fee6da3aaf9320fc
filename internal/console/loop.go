// Package console runs a game against the computer on a text terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const prompt = "Press 1-9 to pick the next move, 0 for a hint, r to restart, x to quit"

type gamePlay interface {
	NewGame(ctx context.Context, computerFirst bool) (*entity.Game, error)
	Restart(ctx context.Context, gameID string, computerFirst bool) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, square entity.Square) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (entity.Square, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type Loop struct {
	logger   *slog.Logger
	gamePlay gamePlay

	in  *bufio.Scanner
	out io.Writer

	computerFirst bool
}

func New(logger *slog.Logger, gamePlay gamePlay, in io.Reader, out io.Writer, computerFirst bool) *Loop {
	return &Loop{
		logger:        logger.With("component", "console"),
		gamePlay:      gamePlay,
		in:            bufio.NewScanner(in),
		out:           out,
		computerFirst: computerFirst,
	}
}

// Run - plays one game until it ends, the player quits, input runs out or ctx
// is canceled.
func (that *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(that.out, " --- GAME START --- ")

	game, err := that.gamePlay.NewGame(ctx, that.computerFirst)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.announceComputerMove(game, entity.NoMove)
	RenderBoard(that.out, game)

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines := that.readLines(readCtx)

	for !game.IsFinished() {
		if ctx.Err() != nil {
			return that.interrupt(ctx, game)
		}

		fmt.Fprintln(that.out, prompt)

		var (
			line inputLine
			ok   bool
		)

		select {
		case <-ctx.Done():
			return that.interrupt(ctx, game)
		case line, ok = <-lines:
		}

		if !ok {
			that.gamePlay.CleanupGame(ctx, game)
			break
		}

		if line.err != nil {
			return fmt.Errorf("failed to read input: %w", line.err)
		}

		input := strings.ToLower(strings.TrimSpace(line.text))

		switch input {
		case "":
			continue
		case "x":
			that.gamePlay.CleanupGame(ctx, game)
			fmt.Fprintln(that.out, "\n --- GAME OVER --- ")
			return nil
		case "r":
			if game, err = that.gamePlay.Restart(ctx, game.ID, that.computerFirst); err != nil {
				return fmt.Errorf("failed to restart game: %w", err)
			}
			fmt.Fprintln(that.out, " --- GAME RESTART --- ")
			that.announceComputerMove(game, entity.NoMove)
			RenderBoard(that.out, game)
		case "0":
			if err = that.hint(ctx, game.ID); err != nil {
				return err
			}
		default:
			if game, err = that.turn(ctx, game, input); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(that.out, "\n --- GAME OVER --- ")

	return nil
}

type inputLine struct {
	text string
	err  error
}

// readLines - scans input in the background. The channel is closed when input
// runs out or ctx is canceled.
func (that *Loop) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- inputLine{text: that.in.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := that.in.Err(); err != nil {
			select {
			case lines <- inputLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

// interrupt - ends a game abandoned by a canceled context.
func (that *Loop) interrupt(ctx context.Context, game *entity.Game) error {
	that.logger.Info("game interrupted", "gameID", game.ID)
	that.gamePlay.CleanupGame(context.WithoutCancel(ctx), game)
	fmt.Fprintln(that.out, "\n --- GAME OVER --- ")

	return nil
}

func (that *Loop) turn(ctx context.Context, game *entity.Game, input string) (*entity.Game, error) {
	number, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(that.out, "Square input should be between 1-9")
		return game, nil
	}

	square := entity.Square(number)

	next, err := that.gamePlay.MakeTurn(ctx, game.ID, square)
	if errors.Is(err, entity.ErrSquareOccupied) {
		fmt.Fprintln(that.out, "Choose another empty square!")
		return game, nil
	}

	if errors.Is(err, entity.ErrInvalidSquare) {
		fmt.Fprintln(that.out, "Square input should be between 1-9")
		return game, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	that.announceComputerMove(next, square)
	RenderBoard(that.out, next)
	that.announceResult(next)

	return next, nil
}

func (that *Loop) hint(ctx context.Context, gameID string) error {
	square, err := that.gamePlay.Hint(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get hint: %w", err)
	}

	fmt.Fprintln(that.out, "HINT: square", square)

	return nil
}

// announceComputerMove - prints the computer's reply when the last move is not
// the human's square.
func (that *Loop) announceComputerMove(game *entity.Game, humanSquare entity.Square) {
	if game.LastMove == entity.NoMove || game.LastMove == humanSquare {
		return
	}

	that.logger.Debug("computer moved", "gameID", game.ID, "square", game.LastMove)
	fmt.Fprintln(that.out, "NEXT MOVE BY AI:", game.LastMove)
}

func (that *Loop) announceResult(game *entity.Game) {
	switch game.Winner {
	case entity.HumanMark.String():
		fmt.Fprintln(that.out, "**** YOU WIN ****")
	case entity.ComputerMark.String():
		fmt.Fprintln(that.out, "  YOU LOSE")
	case entity.PlayerTie:
		fmt.Fprintln(that.out, "  DRAW")
	}
}
