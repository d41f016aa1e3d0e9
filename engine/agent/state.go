// Package agent implements the decision core of a rule-based player: hint
// replay into private card knowledge, firework playability, and an ordered
// rule cascade that picks exactly one action per turn.
package agent

import (
	engine "github.com/Tychonus/HanabAI/engine"
)

// State is the read-only game snapshot an agent decides from. engine.View
// implements it; the agent's own cards read as engine.HiddenCard.
type State interface {
	NumPlayers() uint8
	HandSize() uint8
	NextPlayer() uint8
	HintTokens() uint8
	MaxHintTokens() uint8
	FuseTokens() uint8
	DeckExhausted() bool
	FireworkSize(c engine.Colour) uint8
	Hand(p uint8) []engine.Card
	History() []engine.Action
	TurnNumber() int

	// CheckAction returns an error wrapping engine.ErrIllegalAction if a
	// would be rejected.
	CheckAction(a engine.Action) error
}

// AgentState is everything one agent remembers between turns. It is created
// once, when the agent takes its seat, and is then updated only by that
// agent's own decisions: Refresh at the start of each turn, and the
// post-action Reset/Vacate after a play or discard.
type AgentState struct {
	Seat       uint8
	NumPlayers uint8

	Knowledge Knowledge
	Recency   Recency
}

// NewAgentState creates the state for the agent at seat in a game of
// numPlayers with hands of handSize cards.
func NewAgentState(numPlayers, seat, handSize uint8) AgentState {
	return AgentState{
		Seat:       seat,
		NumPlayers: numPlayers,
		Knowledge:  NewKnowledge(handSize),
		Recency:    NewRecency(handSize),
	}
}

// afterAction applies the post-action updates: the slot that just lost its
// card forgets everything and becomes the newest slot.
func (a *AgentState) afterAction(act engine.Action) {
	if act.Type != engine.ActionPlay && act.Type != engine.ActionDiscard {
		return
	}
	a.Knowledge.Reset(act.Slot)
	a.Recency.Vacate(act.Slot)
}

// occupied reports which of the agent's own slots currently hold a card.
func occupied(s State, seat uint8) []bool {
	hand := s.Hand(seat)
	out := make([]bool, len(hand))
	for i, c := range hand {
		out[i] = !c.IsEmpty()
	}
	return out
}
