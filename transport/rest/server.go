package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - wires the game routes.
func NewRouter(logger *slog.Logger, gamePlay gamePlay) http.Handler {
	handler := NewGameHandler(logger, gamePlay)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Post("/games", handler.CreateGame)
	router.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", handler.GetGame)
		r.Post("/turn", handler.MakeTurn)
		r.Get("/hint", handler.Hint)
		r.Post("/restart", handler.Restart)
	})

	return router
}

// Start - serves handler until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
