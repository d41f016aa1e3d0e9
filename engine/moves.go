package engine

// LegalActions lists every action the current player may take, in a fixed
// order: plays, then discards, then hints by receiver in turn order (colour
// hints before value hints). It is empty once the game is over.
func (g *GameState) LegalActions() []Action {
	if g.IsGameOver() {
		return nil
	}
	p := g.CurrentPlayer
	n := g.Rules.NumPlayers
	var out []Action

	hand := g.Players[p].Hand
	for s := uint8(0); s < g.Rules.HandSize; s++ {
		if !hand[s].IsEmpty() {
			out = append(out, Play(p, s))
		}
	}
	for s := uint8(0); s < g.Rules.HandSize; s++ {
		if !hand[s].IsEmpty() {
			out = append(out, Discard(p, s))
		}
	}
	if g.HintTokens == 0 {
		return out
	}

	for i := uint8(1); i < n; i++ {
		r := (p + i) % n
		recv := g.Hand(r)
		var colours [NumColours]bool
		var values [MaxValue + 1]bool
		for _, c := range recv {
			if c.Known() {
				colours[c.Colour()] = true
				values[c.Value()] = true
			}
		}
		for _, col := range Colours {
			if colours[col] {
				out = append(out, HintColour(p, r, hintMask(recv, func(c Card) bool { return c.Colour() == col }), col))
			}
		}
		for v := uint8(1); v <= MaxValue; v++ {
			if values[v] {
				out = append(out, HintValue(p, r, hintMask(recv, func(c Card) bool { return c.Value() == v }), v))
			}
		}
	}
	return out
}

// hintMask marks the visible cards of hand that satisfy match.
func hintMask(hand []Card, match func(Card) bool) []bool {
	mask := make([]bool, len(hand))
	for i, c := range hand {
		mask[i] = c.Known() && match(c)
	}
	return mask
}
