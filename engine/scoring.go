package engine

// Score returns the number of cards on all fireworks.
func (g *GameState) Score() int {
	total := 0
	for _, size := range g.Fireworks {
		total += int(size)
	}
	return total
}

// MaxScore is the score of a game with every firework complete.
const MaxScore = NumColours * MaxValue
