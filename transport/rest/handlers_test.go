package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gamePlay := service.NewGamePlayService(
		logger,
		service.NewGameService(repository.NewMemoryGameRepository()),
		service.NewBotService(logger),
	)

	srv := httptest.NewServer(NewRouter(logger, gamePlay))
	t.Cleanup(srv.Close)

	return srv
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeGame(t *testing.T, resp *http.Response) *entity.Game {
	t.Helper()

	var game entity.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&game))

	return &game
}

func createGame(t *testing.T, srv *httptest.Server, body string) *entity.Game {
	t.Helper()

	resp := doRequest(t, http.MethodPost, srv.URL+"/games", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeGame(t, resp)
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)

	resp := doRequest(t, http.MethodGet, srv.URL+"/ping", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestGameHandler_CreateGame(t *testing.T) {
	t.Run("Without a body the human opens", func(t *testing.T) {
		srv := newTestServer(t)

		game := createGame(t, srv, "")

		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.Board{}, game.Board)
		assert.Equal(t, entity.HumanMark, game.NextPlayer)
	})

	t.Run("Computer opens", func(t *testing.T) {
		srv := newTestServer(t)

		game := createGame(t, srv, `{"computer_first": true}`)

		assert.Equal(t, entity.PlayerO, game.Board[0][0])
		assert.Equal(t, 1, game.Turn)
	})

	t.Run("Malformed body", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doRequest(t, http.MethodPost, srv.URL+"/games", `{"computer_first":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGameHandler_GetGame(t *testing.T) {
	t.Run("Existing game", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, "")

		resp := doRequest(t, http.MethodGet, srv.URL+"/games/"+created.ID, "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, created, decodeGame(t, resp))
	})

	t.Run("Unknown game", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doRequest(t, http.MethodGet, srv.URL+"/games/missing", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGameHandler_MakeTurn(t *testing.T) {
	t.Run("Human move and computer reply", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, "")

		// When: the human takes the center
		resp := doRequest(t, http.MethodPost, srv.URL+"/games/"+created.ID+"/turn", `{"square": 5}`)

		// Then: both moves are on the board
		require.Equal(t, http.StatusOK, resp.StatusCode)
		game := decodeGame(t, resp)
		assert.Equal(t, entity.PlayerX, game.Board[1][1])
		assert.Equal(t, entity.PlayerO, game.Board[0][0])
		assert.Equal(t, 2, game.Turn)
	})

	t.Run("Occupied square", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, `{"computer_first": true}`)

		resp := doRequest(t, http.MethodPost, srv.URL+"/games/"+created.ID+"/turn", `{"square": 1}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Out of range square", func(t *testing.T) {
		srv := newTestServer(t)
		created := createGame(t, srv, "")

		resp := doRequest(t, http.MethodPost, srv.URL+"/games/"+created.ID+"/turn", `{"square": 10}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown game", func(t *testing.T) {
		srv := newTestServer(t)

		resp := doRequest(t, http.MethodPost, srv.URL+"/games/missing/turn", `{"square": 5}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGameHandler_Hint(t *testing.T) {
	srv := newTestServer(t)
	created := createGame(t, srv, "")

	resp := doRequest(t, http.MethodGet, srv.URL+"/games/"+created.ID+"/hint", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var hint hintResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&hint))
	assert.Equal(t, entity.Square(1), hint.Square)
}

func TestGameHandler_Restart(t *testing.T) {
	srv := newTestServer(t)
	created := createGame(t, srv, "")

	resp := doRequest(t, http.MethodPost, srv.URL+"/games/"+created.ID+"/turn", `{"square": 5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodPost, srv.URL+"/games/"+created.ID+"/restart", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.NewGame(created.ID, false), decodeGame(t, resp))
}
