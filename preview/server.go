package preview

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/plus3/dotris/highscore"
)

// Server serves the websocket stream next to a health check and the highscore table.
type Server struct {
	hub    *Hub
	scores *highscore.Table
	srv    *http.Server
}

func NewServer(addr string, hub *Hub, scores *highscore.Table) *Server {
	s := &Server{hub: hub, scores: scores}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.ServeWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"viewers": s.hub.Clients(),
		})
	})
	mux.HandleFunc("/highscores", func(w http.ResponseWriter, r *http.Request) {
		var entries []highscore.Entry
		if s.scores != nil {
			entries = s.scores.Entries()
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"scores": entries})
	})
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[PREVIEW] Listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.hub.Close()
	return s.srv.Shutdown(shutdownCtx)
}
