package engine

// IsGameOver reports whether no further actions are accepted: the fuse has
// burnt out, every firework is complete, or the final countdown has run.
func (g *GameState) IsGameOver() bool {
	if g.FuseTokens == 0 {
		return true
	}
	if g.FinalActionIndex != -1 && int(g.TurnNumber) > g.FinalActionIndex {
		return true
	}
	for _, size := range g.Fireworks {
		if size < MaxValue {
			return false
		}
	}
	return true
}

// TurnsRemaining returns how many actions are left in the final countdown,
// or -1 while the deck still has cards.
func (g *GameState) TurnsRemaining() int {
	if g.FinalActionIndex == -1 {
		return -1
	}
	left := g.FinalActionIndex - int(g.TurnNumber) + 1
	if left < 0 {
		return 0
	}
	return left
}
