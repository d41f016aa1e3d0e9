package agent

import (
	engine "github.com/Tychonus/HanabAI/engine"
)

// HintKind selects which attribute of a card a hint names.
type HintKind uint8

const (
	HintByColour HintKind = iota
	HintByValue
)

// EncodeColour returns the mask for a colour hint: true exactly where the
// slot holds a visible card of colour c.
func EncodeColour(hand []engine.Card, c engine.Colour) []bool {
	mask := make([]bool, len(hand))
	for i, card := range hand {
		mask[i] = card.Known() && card.Colour() == c
	}
	return mask
}

// EncodeValue returns the mask for a value hint: true exactly where the
// slot holds a visible card of value v.
func EncodeValue(hand []engine.Card, v uint8) []bool {
	mask := make([]bool, len(hand))
	for i, card := range hand {
		mask[i] = card.Known() && card.Value() == v
	}
	return mask
}

// HintFor builds the hint from actor to receiver that names the card at slot
// of hand by colour or by value.
func HintFor(actor, receiver uint8, hand []engine.Card, slot int, kind HintKind) engine.Action {
	card := hand[slot]
	if kind == HintByColour {
		return engine.HintColour(actor, receiver, EncodeColour(hand, card.Colour()), card.Colour())
	}
	return engine.HintValue(actor, receiver, EncodeValue(hand, card.Value()), card.Value())
}

// coinFlipHint picks colour or value with equal probability.
func coinFlipHint(t *Turn, receiver uint8, hand []engine.Card, slot int) engine.Action {
	kind := HintByValue
	if t.Rng.IntN(2) == 0 {
		kind = HintByColour
	}
	return HintFor(t.Agent.Seat, receiver, hand, slot, kind)
}

// Decode applies a hint addressed to this agent. Only slots marked true are
// touched, and the named attribute overwrites whatever was known before, so
// applying the same hint twice changes nothing the second time.
// It returns false, leaving k untouched, for malformed hints.
func Decode(k *Knowledge, a engine.Action) bool {
	if !wellFormedHint(a, k.HandSize) {
		return false
	}
	for i, marked := range a.Mask {
		if !marked {
			continue
		}
		if a.Type == engine.ActionHintColour {
			k.Slots[i].Colour = a.Colour
		} else {
			k.Slots[i].Value = a.Value
		}
	}
	return true
}

func wellFormedHint(a engine.Action, handSize uint8) bool {
	if len(a.Mask) != int(handSize) {
		return false
	}
	switch a.Type {
	case engine.ActionHintColour:
		return a.Colour.Valid()
	case engine.ActionHintValue:
		return a.Value >= 1 && a.Value <= engine.MaxValue
	}
	return false
}
