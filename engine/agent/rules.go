package agent

import (
	"math/rand/v2"

	engine "github.com/Tychonus/HanabAI/engine"
)

// Turn is the input every rule sees: the shared snapshot, this agent's
// private state (already refreshed), and the agent's random source.
type Turn struct {
	State State
	Agent *AgentState
	Rng   *rand.Rand
}

// Rule is one step of the cascade. Evaluate either returns an action and
// true, or abstains with false. Rules never mutate the Turn's state.
type Rule interface {
	Name() RuleName
	Evaluate(t *Turn) (engine.Action, bool)
}

// ---------------------------------------------------------------------------
// Plays
// ---------------------------------------------------------------------------

// knownSafePlay plays the first slot whose hinted colour and value match the
// next playable card of that colour.
type knownSafePlay struct{}

func (knownSafePlay) Name() RuleName { return RuleKnownSafePlay }

func (knownSafePlay) Evaluate(t *Turn) (engine.Action, bool) {
	if slot, ok := knownSafeSlot(t); ok {
		return engine.Play(t.Agent.Seat, slot), true
	}
	return engine.Action{}, false
}

func knownSafeSlot(t *Turn) (uint8, bool) {
	occ := occupied(t.State, t.Agent.Seat)
	k := &t.Agent.Knowledge
	for i := uint8(0); i < k.HandSize && int(i) < len(occ); i++ {
		if !occ[i] {
			continue
		}
		sk := k.At(i)
		if sk.HasColour() && sk.Value == Playable(t.State, sk.Colour) {
			return i, true
		}
	}
	return 0, false
}

// endGameSafety fires only once the deck is gone and more than one fuse
// token remains: a known-safe play if there is one, otherwise a blind guess.
type endGameSafety struct {
	probability float64
}

func (endGameSafety) Name() RuleName { return RuleEndGameSafety }

func (r endGameSafety) Evaluate(t *Turn) (engine.Action, bool) {
	if t.State.FuseTokens() <= 1 || !t.State.DeckExhausted() {
		return engine.Action{}, false
	}
	if slot, ok := knownSafeSlot(t); ok {
		return engine.Play(t.Agent.Seat, slot), true
	}
	return guess(t, r.probability)
}

// guessPlay is the unconditional blind play used at the tail of the legacy
// cascade.
type guessPlay struct {
	probability float64
}

func (guessPlay) Name() RuleName { return RuleGuessPlay }

func (r guessPlay) Evaluate(t *Turn) (engine.Action, bool) {
	return guess(t, r.probability)
}

// guess rolls once per remaining fuse token; the first success plays a
// uniformly chosen occupied slot.
func guess(t *Turn, p float64) (engine.Action, bool) {
	occ := occupied(t.State, t.Agent.Seat)
	for i := uint8(0); i < t.State.FuseTokens(); i++ {
		if t.Rng.Float64() >= p {
			continue
		}
		if slot, ok := randomOccupied(t.Rng, occ); ok {
			return engine.Play(t.Agent.Seat, slot), true
		}
		return engine.Action{}, false
	}
	return engine.Action{}, false
}

// ---------------------------------------------------------------------------
// Hints
// ---------------------------------------------------------------------------

// informativeHint points out the first playable card found, scanning the
// other players in turn order from the next one.
type informativeHint struct{}

func (informativeHint) Name() RuleName { return RuleInformativeHint }

func (informativeHint) Evaluate(t *Turn) (engine.Action, bool) {
	if t.State.HintTokens() == 0 {
		return engine.Action{}, false
	}
	for _, r := range others(t) {
		hand := t.State.Hand(r)
		for slot, c := range hand {
			if isPlayable(t.State, c) {
				return coinFlipHint(t, r, hand, slot), true
			}
		}
	}
	return engine.Action{}, false
}

// dispensableHint runs once hint tokens are scarce and points out a card
// that can never be played. A colour hint on a finished firework is
// preferred because it marks every such card at once.
type dispensableHint struct {
	below uint8
}

func (dispensableHint) Name() RuleName { return RuleDispensableHint }

func (r dispensableHint) Evaluate(t *Turn) (engine.Action, bool) {
	tokens := t.State.HintTokens()
	if tokens == 0 || tokens >= r.below {
		return engine.Action{}, false
	}

	var (
		found        bool
		fallbackTo   uint8
		fallbackHand []engine.Card
		fallbackSlot int
	)
	for _, p := range others(t) {
		hand := t.State.Hand(p)
		for slot, c := range hand {
			if !isDispensable(t.State, c) {
				continue
			}
			if Playable(t.State, c.Colour()) == Complete {
				return HintFor(t.Agent.Seat, p, hand, slot, HintByColour), true
			}
			if !found {
				found, fallbackTo, fallbackHand, fallbackSlot = true, p, hand, slot
			}
		}
	}
	if !found {
		return engine.Action{}, false
	}
	return HintFor(t.Agent.Seat, fallbackTo, fallbackHand, fallbackSlot, HintByValue), true
}

// randomHint tells the next player about one of their cards at random.
type randomHint struct{}

func (randomHint) Name() RuleName { return RuleRandomHint }

func (randomHint) Evaluate(t *Turn) (engine.Action, bool) {
	if t.State.HintTokens() == 0 {
		return engine.Action{}, false
	}
	next := (t.Agent.Seat + 1) % t.State.NumPlayers()
	hand := t.State.Hand(next)
	occ := make([]bool, len(hand))
	for i, c := range hand {
		occ[i] = c.Known()
	}
	slot, ok := randomOccupied(t.Rng, occ)
	if !ok {
		return engine.Action{}, false
	}
	return coinFlipHint(t, next, hand, int(slot)), true
}

// ---------------------------------------------------------------------------
// Discards
// ---------------------------------------------------------------------------

// knownDiscard discards the first slot known to hold a card below its
// colour's playable value.
type knownDiscard struct {
	skipAtMax bool
}

func (knownDiscard) Name() RuleName { return RuleKnownDiscard }

func (r knownDiscard) Evaluate(t *Turn) (engine.Action, bool) {
	if r.skipAtMax && saturated(t.State) {
		return engine.Action{}, false
	}
	occ := occupied(t.State, t.Agent.Seat)
	k := &t.Agent.Knowledge
	for i := uint8(0); i < k.HandSize && int(i) < len(occ); i++ {
		if !occ[i] {
			continue
		}
		sk := k.At(i)
		if sk.Complete() && sk.Value < Playable(t.State, sk.Colour) {
			return engine.Discard(t.Agent.Seat, i), true
		}
	}
	return engine.Action{}, false
}

// discardOldest discards the card held longest. It stays quiet once the deck
// is gone, since a discard then only shrinks the hand.
type discardOldest struct {
	skipAtMax bool
}

func (discardOldest) Name() RuleName { return RuleDiscardOldest }

func (r discardOldest) Evaluate(t *Turn) (engine.Action, bool) {
	if t.State.DeckExhausted() {
		return engine.Action{}, false
	}
	if r.skipAtMax && saturated(t.State) {
		return engine.Action{}, false
	}
	slot, ok := t.Agent.Recency.Oldest(occupied(t.State, t.Agent.Seat))
	if !ok {
		return engine.Action{}, false
	}
	return engine.Discard(t.Agent.Seat, slot), true
}

// discardRandom is the terminal rule: it discards any occupied slot and only
// abstains when the hand is empty.
type discardRandom struct{}

func (discardRandom) Name() RuleName { return RuleDiscardRandom }

func (discardRandom) Evaluate(t *Turn) (engine.Action, bool) {
	slot, ok := randomOccupied(t.Rng, occupied(t.State, t.Agent.Seat))
	if !ok {
		return engine.Action{}, false
	}
	return engine.Discard(t.Agent.Seat, slot), true
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// others returns every other seat in turn order, starting with the next one.
func others(t *Turn) []uint8 {
	n := t.State.NumPlayers()
	out := make([]uint8, 0, n-1)
	for i := uint8(1); i < n; i++ {
		out = append(out, (t.Agent.Seat+i)%n)
	}
	return out
}

func saturated(s State) bool {
	return s.HintTokens() >= s.MaxHintTokens()
}

// randomOccupied picks uniformly among the true entries of occ.
func randomOccupied(rng *rand.Rand, occ []bool) (uint8, bool) {
	var slots [engine.MaxHandSize]uint8
	n := 0
	for i, ok := range occ {
		if ok && n < len(slots) {
			slots[n] = uint8(i)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return slots[rng.IntN(n)], true
}
