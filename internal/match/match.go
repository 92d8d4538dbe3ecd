// Package match drives one two-player match through its protocol
// lifecycle: redraw negotiation, repeated simultaneous battle turns
// and rematch negotiation. A match buffers each side's answer for the
// current phase and resolves once both have answered, so the two
// players may submit in any order.
//
// HandleMessage is a synchronous, non-blocking state transition and
// is not internally synchronized; the transport layer must serialize
// calls per match.
package match

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/inkclash/inkclash-server/internal/game"
)

// Sender delivers one text payload to a connected player. Delivery is
// best effort: the match never retries a failed send.
type Sender interface {
	Send(payload []byte) error
}

// GameFactory deals a fresh GameState. Called once at construction
// and again on every accepted rematch.
type GameFactory func() (*game.GameState, error)

// Phase is the protocol lifecycle position.
type Phase int

const (
	PhaseRedraw Phase = iota
	PhaseInGame
	PhaseRematch
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseRedraw:
		return "REDRAW"
	case PhaseInGame:
		return "IN_GAME"
	case PhaseRematch:
		return "REMATCH"
	case PhaseEnd:
		return "END"
	default:
		return fmt.Sprintf("PHASE_%d", int(p))
	}
}

// Match owns one game's protocol state. End is terminal: the match
// never leaves it, and teardown is the lobby's job.
type Match struct {
	id        uuid.UUID
	logger    *zap.Logger
	clientIDs [2]uuid.UUID
	newGame   GameFactory
	game      *game.GameState

	phase          Phase
	redrawAnswers  [2]*bool
	moves          [2]*game.Move
	rematchAnswers [2]*bool

	onResult func(game.Winner)
}

// New creates a match between two connected clients and deals the
// opening game state.
func New(id uuid.UUID, clientOne, clientTwo uuid.UUID, newGame GameFactory, logger *zap.Logger) (*Match, error) {
	g, err := newGame()
	if err != nil {
		return nil, fmt.Errorf("dealing opening state: %w", err)
	}
	return &Match{
		id:        id,
		logger:    logger.With(zap.String("match_id", id.String())),
		clientIDs: [2]uuid.UUID{clientOne, clientTwo},
		newGame:   newGame,
		game:      g,
		phase:     PhaseRedraw,
	}, nil
}

func (m *Match) ID() uuid.UUID { return m.id }

// Phase reports the current lifecycle position.
func (m *Match) CurrentPhase() Phase { return m.phase }

// IsOver reports whether the match has reached its terminal state.
func (m *Match) IsOver() bool { return m.phase == PhaseEnd }

// Game exposes the current game state for read-side callers.
func (m *Match) Game() *game.GameState { return m.game }

// SetResultHandler installs a callback invoked once per finished
// game, before the rematch phase opens.
func (m *Match) SetResultHandler(fn func(game.Winner)) { m.onResult = fn }

// PlayerNumber maps a connected client id onto its side of the match.
func (m *Match) PlayerNumber(clientID uuid.UUID) (game.PlayerID, bool) {
	switch clientID {
	case m.clientIDs[game.PlayerOne]:
		return game.PlayerOne, true
	case m.clientIDs[game.PlayerTwo]:
		return game.PlayerTwo, true
	default:
		return 0, false
	}
}

// OpponentID returns the other registered client. An id that is not
// part of this match means the transport routed a message wrong; that
// is a bug, not an input error.
func (m *Match) OpponentID(own uuid.UUID) uuid.UUID {
	p, ok := m.PlayerNumber(own)
	if !ok {
		panic(fmt.Sprintf("match: client %s is not part of match %s", own, m.id))
	}
	return m.clientIDs[p.Opponent()]
}

// SendOpening pushes the dealt game state to both sides. Called once
// by the lobby right after pairing.
func (m *Match) SendOpening(one, two Sender) {
	m.send(one, stateResponse(m.game, game.PlayerOne))
	m.send(two, stateResponse(m.game, game.PlayerTwo))
}

// HandleMessage feeds one player's raw text message into the state
// machine. Malformed or rule-violating input is dropped silently: no
// state changes, nothing is sent, and the player may resend. The
// caller supplies both send capabilities because resolving a phase
// answers both sides at once.
func (m *Match) HandleMessage(p game.PlayerID, raw []byte, own, opp Sender) {
	switch m.phase {
	case PhaseRedraw:
		m.handleRedraw(p, raw, own, opp)
	case PhaseInGame:
		m.handleBattle(p, raw, own, opp)
	case PhaseRematch:
		m.handleRematch(p, raw, own, opp)
	case PhaseEnd:
		// Terminal: everything is ignored.
	}
}

func (m *Match) handleRedraw(p game.PlayerID, raw []byte, own, opp Sender) {
	answer, ok := decodeBool(raw)
	if !ok {
		m.logger.Debug("dropping undecodable redraw answer", zap.Stringer("player", p))
		return
	}
	m.redrawAnswers[p] = &answer
	if m.redrawAnswers[p.Opponent()] == nil {
		return
	}

	for id := game.PlayerOne; id <= game.PlayerTwo; id++ {
		if *m.redrawAnswers[id] {
			if err := m.game.Player(id).RedrawHand(m.game.Rng()); err != nil {
				m.logger.Error("hand redraw failed", zap.Stringer("player", id), zap.Error(err))
			}
		}
	}
	m.redrawAnswers = [2]*bool{}

	m.send(own, RedrawResponse{Type: msgRedrawResult, You: viewOf(m.game, p)})
	m.send(opp, RedrawResponse{Type: msgRedrawResult, You: viewOf(m.game, p.Opponent())})
	m.phase = PhaseInGame
	m.logger.Debug("redraw phase resolved")
}

func (m *Match) handleBattle(p game.PlayerID, raw []byte, own, opp Sender) {
	var req BattleRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		m.logger.Debug("dropping undecodable battle message", zap.Stringer("player", p), zap.Error(err))
		return
	}
	rawMove, err := req.RawMove()
	if err != nil {
		m.logger.Debug("dropping battle message", zap.Stringer("player", p), zap.Error(err))
		return
	}
	move, err := game.ValidateMove(m.game.Board(), m.game.Player(p), p, rawMove)
	if err != nil {
		m.logger.Debug("rejecting move", zap.Stringer("player", p), zap.Error(err))
		return
	}
	m.moves[p] = &move
	if m.moves[p.Opponent()] == nil {
		return
	}

	m.game.Update(*m.moves[game.PlayerOne], *m.moves[game.PlayerTwo])
	m.moves = [2]*game.Move{}

	if m.game.TurnsLeft() == 0 {
		winner := m.game.CheckWinner()
		m.logger.Info("game finished", zap.Stringer("winner", winner))
		if m.onResult != nil {
			m.onResult(winner)
		}
		m.send(own, EndResponse{Type: msgGameEnd, Outcome: outcomeFor(p, winner)})
		m.send(opp, EndResponse{Type: msgGameEnd, Outcome: outcomeFor(p.Opponent(), winner)})
		m.phase = PhaseRematch
		return
	}

	m.send(own, stateResponse(m.game, p))
	m.send(opp, stateResponse(m.game, p.Opponent()))
}

func (m *Match) handleRematch(p game.PlayerID, raw []byte, own, opp Sender) {
	answer, ok := decodeBool(raw)
	if !ok {
		m.logger.Debug("dropping undecodable rematch answer", zap.Stringer("player", p))
		return
	}
	if !answer {
		m.logger.Info("rematch declined", zap.Stringer("player", p))
		m.rematchAnswers = [2]*bool{}
		m.phase = PhaseEnd
		return
	}
	m.rematchAnswers[p] = &answer
	if m.rematchAnswers[p.Opponent()] == nil {
		return
	}

	g, err := m.newGame()
	if err != nil {
		m.logger.Error("rematch deal failed", zap.Error(err))
		m.phase = PhaseEnd
		return
	}
	m.game = g
	m.rematchAnswers = [2]*bool{}
	m.phase = PhaseRedraw
	m.logger.Info("rematch accepted")

	m.send(own, stateResponse(m.game, p))
	m.send(opp, stateResponse(m.game, p.Opponent()))
}

func (m *Match) send(s Sender, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		m.logger.Error("encoding response", zap.Error(err))
		return
	}
	if err := s.Send(data); err != nil {
		m.logger.Warn("send failed", zap.Error(err))
	}
}
