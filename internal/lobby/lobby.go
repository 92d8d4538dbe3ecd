// Package lobby pairs waiting clients into matches and routes their
// messages. It owns the shared registries the match core deliberately
// knows nothing about: who is waiting, which match a client belongs
// to, and which connection a client id maps to.
package lobby

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inkclash/inkclash-server/internal/game"
	"github.com/inkclash/inkclash-server/internal/match"
)

// Conn is one connected client: a send capability plus a stable id.
type Conn interface {
	match.Sender
	ID() uuid.UUID
}

// StatsRecorder persists aggregate per-player results. A nil recorder
// disables stats entirely.
type StatsRecorder interface {
	RecordResult(ctx context.Context, playerOne, playerTwo string, winner game.Winner) error
}

// Config carries the match parameters every new game is dealt with.
type Config struct {
	BoardWidth  int
	BoardHeight int
	Turns       int

	// Rng overrides the per-match randomness source. Nil means the
	// seeded production source; tests inject deterministic stand-ins.
	Rng func() game.Rng
}

// Manager is the shared lobby: at most one client waits for an
// opponent, and every paired client maps to its live session.
type Manager struct {
	logger *zap.Logger
	cfg    Config
	stats  StatsRecorder

	mu       sync.Mutex
	waiting  Conn
	sessions map[uuid.UUID]*session
}

// session binds a match to its two connections. Its mutex is what
// guarantees the core's at-most-one-concurrent-HandleMessage
// contract.
type session struct {
	mu    sync.Mutex
	match *match.Match
	conns map[uuid.UUID]Conn
}

// NewManager builds an empty lobby.
func NewManager(cfg Config, stats StatsRecorder, logger *zap.Logger) *Manager {
	if cfg.Rng == nil {
		cfg.Rng = game.NewSeededRng
	}
	return &Manager{
		logger:   logger,
		cfg:      cfg,
		stats:    stats,
		sessions: make(map[uuid.UUID]*session),
	}
}

type notice struct {
	Type string `json:"type"`
}

func (m *Manager) notify(c Conn, kind string) {
	data, _ := json.Marshal(notice{Type: kind})
	if err := c.Send(data); err != nil {
		m.logger.Warn("notice send failed",
			zap.String("client_id", c.ID().String()),
			zap.String("notice", kind),
			zap.Error(err),
		)
	}
}

// Join enters a client into matchmaking. The first caller waits; the
// second completes the pair, and both sides receive the opening game
// state.
func (m *Manager) Join(c Conn) error {
	m.mu.Lock()
	if m.waiting == nil {
		m.waiting = c
		m.mu.Unlock()
		m.logger.Info("client waiting for opponent", zap.String("client_id", c.ID().String()))
		m.notify(c, "waiting")
		return nil
	}

	first := m.waiting
	m.waiting = nil
	m.mu.Unlock()

	rng := m.cfg.Rng()
	factory := func() (*game.GameState, error) {
		board, err := game.NewStandardBoard(m.cfg.BoardWidth, m.cfg.BoardHeight)
		if err != nil {
			return nil, err
		}
		return game.NewGameState(board, game.NewStandardDeck(), game.NewStandardDeck(), m.cfg.Turns, rng)
	}

	matchID := uuid.New()
	mt, err := match.New(matchID, first.ID(), c.ID(), factory, m.logger)
	if err != nil {
		// Put the first client back in the queue; the failure is ours,
		// not theirs.
		m.mu.Lock()
		if m.waiting == nil {
			m.waiting = first
		}
		m.mu.Unlock()
		return err
	}

	sess := &session{
		match: mt,
		conns: map[uuid.UUID]Conn{first.ID(): first, c.ID(): c},
	}
	mt.SetResultHandler(m.resultHandler(first.ID(), c.ID()))

	m.mu.Lock()
	m.sessions[first.ID()] = sess
	m.sessions[c.ID()] = sess
	m.mu.Unlock()

	m.logger.Info("match created",
		zap.String("match_id", matchID.String()),
		zap.String("player_one", first.ID().String()),
		zap.String("player_two", c.ID().String()),
	)

	sess.mu.Lock()
	mt.SendOpening(first, c)
	sess.mu.Unlock()
	return nil
}

// Dispatch routes one raw client message into its match, serialized
// per session. Messages from unknown clients are dropped.
func (m *Manager) Dispatch(clientID uuid.UUID, raw []byte) {
	m.mu.Lock()
	sess := m.sessions[clientID]
	m.mu.Unlock()
	if sess == nil {
		m.logger.Debug("message from client without a match", zap.String("client_id", clientID.String()))
		return
	}

	sess.mu.Lock()
	p, ok := sess.match.PlayerNumber(clientID)
	if !ok {
		sess.mu.Unlock()
		m.logger.Error("session routed a foreign client", zap.String("client_id", clientID.String()))
		return
	}
	own := sess.conns[clientID]
	opp := sess.conns[sess.match.OpponentID(clientID)]
	sess.match.HandleMessage(p, raw, own, opp)
	over := sess.match.IsOver()
	sess.mu.Unlock()

	if over {
		m.teardown(sess, uuid.Nil, "match_closed")
	}
}

// Leave removes a disconnecting client. A waiting client is dequeued;
// a paired one tears the whole match down and the opponent is told.
func (m *Manager) Leave(clientID uuid.UUID) {
	m.mu.Lock()
	if m.waiting != nil && m.waiting.ID() == clientID {
		m.waiting = nil
		m.mu.Unlock()
		m.logger.Info("waiting client left", zap.String("client_id", clientID.String()))
		return
	}
	sess := m.sessions[clientID]
	m.mu.Unlock()

	if sess == nil {
		return
	}
	m.teardown(sess, clientID, "opponent_left")
}

// teardown drops a session from the registry and sends kind to every
// side except leaver.
func (m *Manager) teardown(sess *session, leaver uuid.UUID, kind string) {
	m.mu.Lock()
	removed := false
	for id := range sess.conns {
		if m.sessions[id] == sess {
			delete(m.sessions, id)
			removed = true
		}
	}
	m.mu.Unlock()
	if !removed {
		return
	}

	m.logger.Info("match torn down", zap.String("match_id", sess.match.ID().String()))
	for id, c := range sess.conns {
		if id != leaver {
			m.notify(c, kind)
		}
	}
}

// resultHandler records one finished game's outcome, off the
// match-handling path.
func (m *Manager) resultHandler(playerOne, playerTwo uuid.UUID) func(game.Winner) {
	if m.stats == nil {
		return nil
	}
	return func(w game.Winner) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.stats.RecordResult(ctx, playerOne.String(), playerTwo.String(), w); err != nil {
				m.logger.Error("recording match result", zap.Error(err))
			}
		}()
	}
}

// Waiting reports whether a client is queued, for health reporting.
func (m *Manager) Waiting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.waiting != nil
}

// Sessions reports the number of clients attached to live matches.
func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
