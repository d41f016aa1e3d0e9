package engine

import "github.com/pkg/errors"

// ApplyAction checks and applies a, records it in History with the revealed
// card filled in, and passes the turn. The game is left untouched on error.
func (g *GameState) ApplyAction(a Action) error {
	if err := g.CheckAction(a); err != nil {
		return err
	}

	switch a.Type {
	case ActionPlay:
		a.Card = g.play(a.Actor, a.Slot)
	case ActionDiscard:
		a.Card = g.discard(a.Actor, a.Slot)
	case ActionHintColour, ActionHintValue:
		g.HintTokens--
		a.Mask = append([]bool(nil), a.Mask...)
	default:
		return errors.Wrapf(ErrIllegalAction, "unknown action type %d", a.Type)
	}

	g.History = append(g.History, a)
	g.TurnNumber++
	g.CurrentPlayer = (g.CurrentPlayer + 1) % g.Rules.NumPlayers
	return nil
}

// play moves the card at slot onto its firework if it fits, or to the discard
// pile at the cost of a fuse token. Completing a firework returns a hint token.
func (g *GameState) play(p, slot uint8) Card {
	c := g.Players[p].Hand[slot]
	col := c.Colour()
	if c.Value() == g.Fireworks[col]+1 {
		g.Fireworks[col]++
		if g.Fireworks[col] == MaxValue {
			g.gainHintToken()
		}
	} else {
		g.DiscardPile[g.DiscardLen] = c
		g.DiscardLen++
		if g.FuseTokens > 0 {
			g.FuseTokens--
		}
	}
	g.refill(p, slot)
	return c
}

// discard moves the card at slot to the discard pile and returns a hint token.
// Discarding at the token cap is legal; the pool just stays full.
func (g *GameState) discard(p, slot uint8) Card {
	c := g.Players[p].Hand[slot]
	g.DiscardPile[g.DiscardLen] = c
	g.DiscardLen++
	g.gainHintToken()
	g.refill(p, slot)
	return c
}

func (g *GameState) gainHintToken() {
	if g.HintTokens < g.Rules.MaxHintTokens {
		g.HintTokens++
	}
}

// refill draws into the vacated slot. Drawing the last card starts the final
// countdown: every player, including this one, gets one more action.
func (g *GameState) refill(p, slot uint8) {
	if g.DeckLen == 0 {
		g.Players[p].Hand[slot] = EmptyCard
		return
	}
	g.Players[p].Hand[slot] = g.draw()
	if g.DeckLen == 0 {
		g.FinalActionIndex = int(g.TurnNumber) + int(g.Rules.NumPlayers)
	}
}
