// Package engine implements the game-state side of a cooperative firework card
// game: the deck, hands, fireworks, token pools and the action history that
// agents read from.
//
// The engine is deliberately small. It applies and checks the four moves, and
// hands each seat a View in which that seat's own cards are hidden.
package engine

const (
	MinPlayers      = 2
	MaxPlayers      = 5
	MaxHandSize     = 5
	NumColours      = 5
	MaxValue        = 5
	DeckSize        = 50
	MaxHintTokens   = 8
	StartFuseTokens = 3
)

// copiesPerValue is how many cards of each value every colour has.
var copiesPerValue = [MaxValue + 1]uint8{0, 3, 2, 2, 2, 1}

// PlayerState holds one player's hand, indexed by slot.
type PlayerState struct {
	Hand [MaxHandSize]Card
}

// GameState holds the complete state of one game.
type GameState struct {
	Players     [MaxPlayers]PlayerState
	Deck        [DeckSize]Card
	DeckLen     uint8
	DiscardPile [DeckSize]Card
	DiscardLen  uint8
	Fireworks   [NumColours]uint8 // cards played per colour; always 1..n in order

	HintTokens    uint8
	FuseTokens    uint8
	CurrentPlayer uint8
	TurnNumber    uint16 // number of actions applied so far

	// FinalActionIndex is the index of the last action of the game once the
	// deck has run out, or -1 while cards remain to be drawn.
	FinalActionIndex int

	History []Action
	RNG     uint64
	Rules   Rules
}

// ---------------------------------------------------------------------------
// xorshift64 RNG, inline, no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewGame initializes a new GameState with the given seed and rules.
// The deck is built but not yet shuffled or dealt.
func NewGame(seed uint64, rules Rules) GameState {
	var g GameState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	g.HintTokens = rules.MaxHintTokens
	g.FuseTokens = rules.FuseTokens
	g.FinalActionIndex = -1

	idx := 0
	for _, c := range Colours {
		for v := uint8(1); v <= MaxValue; v++ {
			for k := uint8(0); k < copiesPerValue[v]; k++ {
				g.Deck[idx] = NewCard(c, v)
				idx++
			}
		}
	}
	g.DeckLen = uint8(idx)

	for p := range g.Players {
		for s := range g.Players[p].Hand {
			g.Players[p].Hand[s] = EmptyCard
		}
	}
	return g
}

// Deal shuffles the deck and fills every hand, one card to each player in
// turn order until all hands are full.
func (g *GameState) Deal() {
	// Fisher-Yates shuffle.
	for i := int(g.DeckLen) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i]
	}

	for s := uint8(0); s < g.Rules.HandSize; s++ {
		for p := uint8(0); p < g.Rules.NumPlayers; p++ {
			g.Players[p].Hand[s] = g.draw()
		}
	}
	g.CurrentPlayer = 0
}

// draw pops the top of the deck, or returns EmptyCard when it is exhausted.
func (g *GameState) draw() Card {
	if g.DeckLen == 0 {
		return EmptyCard
	}
	g.DeckLen--
	c := g.Deck[g.DeckLen]
	g.Deck[g.DeckLen] = EmptyCard
	return c
}

// Hand returns a copy of player p's hand, sized to the rules' hand size.
func (g *GameState) Hand(p uint8) []Card {
	out := make([]Card, g.Rules.HandSize)
	copy(out, g.Players[p].Hand[:g.Rules.HandSize])
	return out
}

// DeckExhausted reports whether the last card has been drawn.
func (g *GameState) DeckExhausted() bool {
	return g.DeckLen == 0
}
