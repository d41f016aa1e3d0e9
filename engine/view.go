package engine

// View is a read-only snapshot of the game as one seat sees it: every card
// in the seat's own hand reads as HiddenCard (or EmptyCard once the slot can
// no longer be refilled). History is shared with the game and must not be
// modified.
type View struct {
	seat uint8
	g    GameState
}

// View returns the game as seen from seat.
func (g *GameState) View(seat uint8) View {
	v := View{seat: seat, g: *g}
	own := &v.g.Players[seat].Hand
	for i := range own {
		if !own[i].IsEmpty() {
			own[i] = HiddenCard
		}
	}
	return v
}

// Seat returns the viewing seat.
func (v *View) Seat() uint8 { return v.seat }

func (v *View) NumPlayers() uint8    { return v.g.Rules.NumPlayers }
func (v *View) HandSize() uint8      { return v.g.Rules.HandSize }
func (v *View) NextPlayer() uint8    { return v.g.CurrentPlayer }
func (v *View) HintTokens() uint8    { return v.g.HintTokens }
func (v *View) MaxHintTokens() uint8 { return v.g.Rules.MaxHintTokens }
func (v *View) FuseTokens() uint8    { return v.g.FuseTokens }
func (v *View) DeckExhausted() bool  { return v.g.DeckExhausted() }
func (v *View) TurnNumber() int      { return int(v.g.TurnNumber) }

// FireworkSize returns how many cards of colour c have been played.
func (v *View) FireworkSize(c Colour) uint8 {
	if !c.Valid() {
		return 0
	}
	return v.g.Fireworks[c]
}

// Hand returns player p's hand as the viewer sees it.
func (v *View) Hand(p uint8) []Card { return v.g.Hand(p) }

// History returns every action applied so far, oldest first.
func (v *View) History() []Action { return v.g.History }

// CheckAction asks the game whether a would be legal right now.
func (v *View) CheckAction(a Action) error { return v.g.CheckAction(a) }
