package engine

import "github.com/pkg/errors"

var (
	// ErrIllegalAction is wrapped by every legality failure from CheckAction.
	ErrIllegalAction = errors.New("illegal action")
	// ErrGameOver is returned when an action arrives after the game ended.
	ErrGameOver = errors.Wrap(ErrIllegalAction, "game is already over")
)

// CheckAction reports whether a is legal in the current state. Hidden cards
// count as occupied slots, so a View can check its own seat's moves.
func (g *GameState) CheckAction(a Action) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if a.Actor != g.CurrentPlayer {
		return errors.Wrapf(ErrIllegalAction, "player %d acted on player %d's turn", a.Actor, g.CurrentPlayer)
	}

	switch a.Type {
	case ActionPlay, ActionDiscard:
		if a.Slot >= g.Rules.HandSize {
			return errors.Wrapf(ErrIllegalAction, "%s slot %d out of range", a.Type, a.Slot)
		}
		if g.Players[a.Actor].Hand[a.Slot].IsEmpty() {
			return errors.Wrapf(ErrIllegalAction, "%s of empty slot %d", a.Type, a.Slot)
		}
		return nil

	case ActionHintColour, ActionHintValue:
		return g.checkHint(a)
	}
	return errors.Wrapf(ErrIllegalAction, "unknown action type %d", a.Type)
}

// checkHint validates token availability, the receiver, and that the mask
// matches the receiver's hand exactly.
func (g *GameState) checkHint(a Action) error {
	if g.HintTokens == 0 {
		return errors.Wrap(ErrIllegalAction, "hint given with no hint tokens")
	}
	if a.Receiver >= g.Rules.NumPlayers {
		return errors.Wrapf(ErrIllegalAction, "hint to unknown player %d", a.Receiver)
	}
	if a.Receiver == a.Actor {
		return errors.Wrap(ErrIllegalAction, "player hinted themselves")
	}
	if a.Type == ActionHintColour && !a.Colour.Valid() {
		return errors.Wrapf(ErrIllegalAction, "colour hint with invalid colour %d", a.Colour)
	}
	if a.Type == ActionHintValue && (a.Value < 1 || a.Value > MaxValue) {
		return errors.Wrapf(ErrIllegalAction, "value hint with invalid value %d", a.Value)
	}
	if len(a.Mask) != int(g.Rules.HandSize) {
		return errors.Wrapf(ErrIllegalAction, "hint mask has %d entries, hand has %d", len(a.Mask), g.Rules.HandSize)
	}

	hand := g.Players[a.Receiver].Hand
	matched := false
	for i, marked := range a.Mask {
		c := hand[i]
		match := false
		if c.Known() {
			if a.Type == ActionHintColour {
				match = c.Colour() == a.Colour
			} else {
				match = c.Value() == a.Value
			}
		}
		if marked != match {
			return errors.Wrapf(ErrIllegalAction, "hint mask disagrees with player %d's hand at slot %d", a.Receiver, i)
		}
		matched = matched || match
	}
	if !matched {
		return errors.Wrap(ErrIllegalAction, "hint matches no card")
	}
	return nil
}
