package agent

import (
	"math/rand/v2"
	"testing"

	engine "github.com/Tychonus/HanabAI/engine"
)

// stackedGame deals an n-player game, then replaces every hand with value-3
// cards, which are neither playable nor dispensable on empty fireworks.
func stackedGame(t *testing.T, n uint8) engine.GameState {
	t.Helper()
	g := engine.NewGame(11, engine.DefaultRules(n))
	g.Deal()
	for p := uint8(0); p < n; p++ {
		for s := uint8(0); s < g.Rules.HandSize; s++ {
			g.Players[p].Hand[s] = engine.NewCard(engine.Colours[(int(p)+int(s))%engine.NumColours], 3)
		}
	}
	return g
}

// exhaustDeck empties the deck and starts a countdown long enough that the
// game stays live for the test.
func exhaustDeck(g *engine.GameState) {
	g.DeckLen = 0
	g.FinalActionIndex = int(g.TurnNumber) + int(g.Rules.NumPlayers)
}

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// turnFor builds a rule input for st from g, seen from st's seat.
func turnFor(g *engine.GameState, st *AgentState, seed uint64) *Turn {
	v := g.View(st.Seat)
	return &Turn{State: &v, Agent: st, Rng: newRng(seed)}
}

func agentFor(g *engine.GameState, seat uint8) AgentState {
	return NewAgentState(g.Rules.NumPlayers, seat, g.Rules.HandSize)
}

func card(c engine.Colour, v uint8) engine.Card { return engine.NewCard(c, v) }
