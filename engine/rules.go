package engine

import "github.com/pkg/errors"

// Rules holds the table parameters for one game.
type Rules struct {
	NumPlayers    uint8
	HandSize      uint8
	MaxHintTokens uint8
	FuseTokens    uint8
}

// DefaultRules returns the standard rules for n players: five cards each for
// two or three players, four cards each for four or five.
func DefaultRules(n uint8) Rules {
	return Rules{
		NumPlayers:    n,
		HandSize:      HandSizeFor(n),
		MaxHintTokens: MaxHintTokens,
		FuseTokens:    StartFuseTokens,
	}
}

// HandSizeFor returns the hand size used with n players.
func HandSizeFor(n uint8) uint8 {
	if n > 3 {
		return 4
	}
	return 5
}

// Validate rejects rule sets the engine cannot host.
func (r Rules) Validate() error {
	if r.NumPlayers < MinPlayers || r.NumPlayers > MaxPlayers {
		return errors.Errorf("player count %d outside [%d,%d]", r.NumPlayers, MinPlayers, MaxPlayers)
	}
	if r.HandSize == 0 || r.HandSize > MaxHandSize {
		return errors.Errorf("hand size %d outside [1,%d]", r.HandSize, MaxHandSize)
	}
	if int(r.NumPlayers)*int(r.HandSize) > DeckSize {
		return errors.Errorf("%d hands of %d cards exceed the deck", r.NumPlayers, r.HandSize)
	}
	if r.MaxHintTokens == 0 {
		return errors.New("max hint tokens must be positive")
	}
	if r.FuseTokens == 0 {
		return errors.New("fuse tokens must be positive")
	}
	return nil
}
