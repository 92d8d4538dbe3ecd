package match

import (
	"encoding/json"
	"fmt"

	"github.com/inkclash/inkclash-server/internal/game"
)

// Wire payloads. Incoming messages are phase-dependent: the redraw
// and rematch phases consume bare JSON booleans, the battle phase a
// move object. Anything that fails to decode for the current phase is
// dropped without touching match state.

const (
	actionPass  = "pass"
	actionPlace = "place"
)

// BattleRequest is the untrusted battle-phase input.
type BattleRequest struct {
	HandSlot int    `json:"hand_slot"`
	Action   string `json:"action"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation int    `json:"rotation"`
	Special  bool   `json:"special"`
}

// RawMove maps the request onto the engine's input shape.
func (r BattleRequest) RawMove() (game.RawMove, error) {
	switch r.Action {
	case actionPass:
		return game.RawMove{Pass: true}, nil
	case actionPlace:
		return game.RawMove{
			Slot:     r.HandSlot,
			Anchor:   game.Position{X: r.X, Y: r.Y},
			Rotation: game.Rotation(r.Rotation),
			Special:  r.Special,
		}, nil
	default:
		return game.RawMove{}, fmt.Errorf("unknown action %q", r.Action)
	}
}

// CardView is one hand card as shown to its holder.
type CardView struct {
	Name        string   `json:"name"`
	Priority    int      `json:"priority"`
	SpecialCost int      `json:"special_cost"`
	Grid        []string `json:"grid"`
}

// PlayerView is the private per-side state: the hand and the meter.
type PlayerView struct {
	Hand    []CardView `json:"hand"`
	Special int        `json:"special"`
}

// RedrawResponse answers the redraw phase with the (possibly
// re-dealt) hand.
type RedrawResponse struct {
	Type string     `json:"type"`
	You  PlayerView `json:"you"`
}

// StateResponse carries the shared board plus the addressee's own view.
type StateResponse struct {
	Type      string     `json:"type"`
	Board     [][]string `json:"board"`
	TurnsLeft int        `json:"turns_left"`
	You       PlayerView `json:"you"`
}

// EndResponse reports the per-side outcome of a finished match.
type EndResponse struct {
	Type    string `json:"type"`
	Outcome string `json:"outcome"`
}

const (
	msgRedrawResult = "redraw_result"
	msgGameState    = "game_state"
	msgGameEnd      = "game_end"

	outcomeWin  = "win"
	outcomeLose = "lose"
	outcomeDraw = "draw"
)

func viewOf(g *game.GameState, id game.PlayerID) PlayerView {
	p := g.Player(id)
	hand := make([]CardView, 0, game.HandSize)
	for slot := 0; slot < game.HandSize; slot++ {
		card := p.CardInSlot(slot)
		hand = append(hand, CardView{
			Name:        card.Name,
			Priority:    card.Priority,
			SpecialCost: card.SpecialCost,
			Grid:        card.Grid.Rows(),
		})
	}
	return PlayerView{Hand: hand, Special: p.Special()}
}

func stateResponse(g *game.GameState, id game.PlayerID) StateResponse {
	return StateResponse{
		Type:      msgGameState,
		Board:     g.Board().Rows(),
		TurnsLeft: g.TurnsLeft(),
		You:       viewOf(g, id),
	}
}

func outcomeFor(id game.PlayerID, w game.Winner) string {
	switch {
	case w == game.WinnerDraw:
		return outcomeDraw
	case (w == game.WinnerPlayerOne) == (id == game.PlayerOne):
		return outcomeWin
	default:
		return outcomeLose
	}
}

func decodeBool(raw []byte) (bool, bool) {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false
	}
	return v, true
}
