// Package server is the websocket transport: it upgrades connections,
// feeds incoming text frames to the lobby and reports disconnects.
// All game semantics live below it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/inkclash/inkclash-server/internal/lobby"
)

// Server serves the websocket endpoint and a small health surface.
type Server struct {
	logger   *zap.Logger
	lobby    *lobby.Manager
	upgrader websocket.Upgrader
}

// New wires the transport to a lobby.
func New(lb *lobby.Manager, logger *zap.Logger) *Server {
	return &Server{
		logger: logger,
		lobby:  lb,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy is a deployment concern; the reverse proxy
			// in front of this server enforces it.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Start listens on addr until ctx is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", s.handleHealth)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("http shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("websocket server listening", zap.String("addr", addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.lobby.Sessions(),
		"waiting":  s.lobby.Waiting(),
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := newClient(conn)
	log := s.logger.With(zap.String("client_id", c.ID().String()))
	log.Info("client connected", zap.String("remote", r.RemoteAddr))

	if err := s.lobby.Join(c); err != nil {
		log.Error("joining lobby", zap.Error(err))
		_ = conn.Close()
		return
	}

	defer func() {
		s.lobby.Leave(c.ID())
		_ = conn.Close()
		log.Info("client disconnected")
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("read failed", zap.Error(err))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		s.lobby.Dispatch(c.ID(), data)
	}
}
