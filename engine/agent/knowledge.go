package agent

import (
	engine "github.com/Tychonus/HanabAI/engine"
)

// SlotKnowledge is what hints have revealed about the card in one slot.
// engine.NoColour and Unknown mean the attribute has not been hinted.
type SlotKnowledge struct {
	Colour engine.Colour
	Value  uint8
}

// Unhinted is the knowledge of a freshly drawn card.
var Unhinted = SlotKnowledge{Colour: engine.NoColour, Value: Unknown}

// HasColour reports whether the colour has been hinted.
func (s SlotKnowledge) HasColour() bool { return s.Colour != engine.NoColour }

// HasValue reports whether the value has been hinted.
func (s SlotKnowledge) HasValue() bool { return s.Value != Unknown }

// Complete reports whether both attributes are known.
func (s SlotKnowledge) Complete() bool { return s.HasColour() && s.HasValue() }

// Knowledge holds per-slot knowledge of the agent's own hand. It is never
// ground truth: only hints write to it.
type Knowledge struct {
	Slots    [engine.MaxHandSize]SlotKnowledge
	HandSize uint8
}

// NewKnowledge returns knowledge for a hand of handSize unhinted cards.
func NewKnowledge(handSize uint8) Knowledge {
	k := Knowledge{HandSize: handSize}
	for i := range k.Slots {
		k.Slots[i] = Unhinted
	}
	return k
}

// At returns the knowledge of slot i.
func (k *Knowledge) At(i uint8) SlotKnowledge { return k.Slots[i] }

// Reset forgets slot i; called the moment its card leaves the hand.
func (k *Knowledge) Reset(i uint8) {
	if i < engine.MaxHandSize {
		k.Slots[i] = Unhinted
	}
}

// Refresh replays the hints this agent has received since its previous turn.
// It looks at the last min(numPlayers-1, len(history)) actions, which is
// exactly one round, so no hint is ever applied on two different turns.
// Entries that are not well-formed hints to self are skipped.
func (k *Knowledge) Refresh(history []engine.Action, self, numPlayers uint8) {
	window := int(numPlayers) - 1
	if window > len(history) {
		window = len(history)
	}
	for i := 0; i < window; i++ {
		a := history[len(history)-1-i]
		if !a.Type.IsHint() || a.Receiver != self {
			continue
		}
		Decode(k, a)
	}
}
