package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type gamePlay interface {
	NewGame(ctx context.Context, computerFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	Restart(ctx context.Context, gameID string, computerFirst bool) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, square entity.Square) (*entity.Game, error)
	Hint(ctx context.Context, gameID string) (entity.Square, error)
}

type GameHandler interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeTurn(w http.ResponseWriter, r *http.Request)
	Hint(w http.ResponseWriter, r *http.Request)
	Restart(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger   *slog.Logger
	gamePlay gamePlay
}

type newGameRequest struct {
	ComputerFirst bool `json:"computer_first"`
}

type turnRequest struct {
	Square entity.Square `json:"square"`
}

type hintResponse struct {
	Square entity.Square `json:"square"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewGameHandler(logger *slog.Logger, gamePlay gamePlay) GameHandler {
	return &gameHandler{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

func (that *gameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	game, err := that.gamePlay.NewGame(r.Context(), req.ComputerFirst)
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gamePlay.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if !that.decode(w, r, &req) {
		return
	}

	game, err := that.gamePlay.MakeTurn(r.Context(), chi.URLParam(r, "id"), req.Square)
	if err != nil {
		that.writeError(w, "MakeTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	square, err := that.gamePlay.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "Hint", err)
		return
	}

	writeJSON(w, http.StatusOK, hintResponse{Square: square})
}

func (that *gameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	game, err := that.gamePlay.Restart(r.Context(), chi.URLParam(r, "id"), req.ComputerFirst)
	if err != nil {
		that.writeError(w, "Restart", err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

// decode - reads an optional JSON body into dst. An empty body keeps defaults.
func (that *gameHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return true
	}

	if err != nil {
		that.logger.Debug("failed to decode request body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}

	return true
}

// writeError - maps domain errors onto HTTP status codes.
func (that *gameHandler) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidSquare):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNotYourTurn):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
