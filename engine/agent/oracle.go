package agent

import (
	engine "github.com/Tychonus/HanabAI/engine"
)

// Playable returns the value that can next be played on colour c, or
// Complete once its firework holds all five cards.
func Playable(s State, c engine.Colour) uint8 {
	size := s.FireworkSize(c)
	if size >= engine.MaxValue {
		return Complete
	}
	return size + 1
}

// isPlayable reports whether a visible card can be played right now.
func isPlayable(s State, c engine.Card) bool {
	return c.Known() && c.Value() == Playable(s, c.Colour())
}

// isDispensable reports whether a visible card can never be played again.
func isDispensable(s State, c engine.Card) bool {
	return c.Known() && c.Value() < Playable(s, c.Colour())
}
