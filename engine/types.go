package engine

import "fmt"

// Colour identifies a firework suit.
type Colour uint8

const (
	Red    Colour = 0
	Green  Colour = 1
	Blue   Colour = 2
	White  Colour = 3
	Yellow Colour = 4

	// NoColour marks an unknown or absent colour.
	NoColour Colour = 0xFF
)

// Colours lists the palette in suit order.
var Colours = [NumColours]Colour{Red, Green, Blue, White, Yellow}

var colourNames = [NumColours]string{"red", "green", "blue", "white", "yellow"}

// String returns the lowercase colour name.
func (c Colour) String() string {
	if c.Valid() {
		return colourNames[c]
	}
	return "none"
}

// Valid reports whether c is part of the palette.
func (c Colour) Valid() bool { return c < NumColours }

// ParseColour converts a lowercase colour name back into a Colour.
func ParseColour(s string) (Colour, bool) {
	for i, name := range colourNames {
		if name == s {
			return Colour(i), true
		}
	}
	return NoColour, false
}

// Card is a packed uint8: upper 4 bits = colour, lower 4 bits = value.
type Card uint8

const (
	// EmptyCard represents a slot with no card (the deck ran out).
	EmptyCard Card = 0xFF
	// HiddenCard represents an occupied slot whose identity the viewer cannot see.
	HiddenCard Card = 0xFE
)

// NewCard constructs a Card from colour and value.
func NewCard(c Colour, value uint8) Card {
	return Card((uint8(c) << 4) | (value & 0x0F))
}

// Colour returns the colour bits (upper 4).
func (c Card) Colour() Colour {
	if !c.Known() {
		return NoColour
	}
	return Colour(uint8(c) >> 4)
}

// Value returns the value bits (lower 4), or 0 for empty and hidden slots.
func (c Card) Value() uint8 {
	if !c.Known() {
		return 0
	}
	return uint8(c) & 0x0F
}

// IsEmpty reports whether the slot holds no card.
func (c Card) IsEmpty() bool { return c == EmptyCard }

// Known reports whether the card's identity is visible.
func (c Card) Known() bool { return c != EmptyCard && c != HiddenCard }

func (c Card) String() string {
	switch c {
	case EmptyCard:
		return "--"
	case HiddenCard:
		return "??"
	}
	return fmt.Sprintf("%s-%d", c.Colour(), c.Value())
}

// ActionType enumerates the four moves a player can make.
type ActionType uint8

const (
	ActionPlay       ActionType = iota // 0
	ActionDiscard                      // 1
	ActionHintColour                   // 2
	ActionHintValue                    // 3
)

func (t ActionType) String() string {
	switch t {
	case ActionPlay:
		return "play"
	case ActionDiscard:
		return "discard"
	case ActionHintColour:
		return "hint-colour"
	case ActionHintValue:
		return "hint-value"
	}
	return "unknown"
}

// IsHint reports whether t is one of the hint actions.
func (t ActionType) IsHint() bool { return t == ActionHintColour || t == ActionHintValue }

// NoPlayer marks a missing hint receiver.
const NoPlayer uint8 = 0xFF

// Action is one move by one player. Slot is meaningful for plays and discards;
// Receiver, Mask, Colour and Value for hints. Card is filled in by the engine
// when a play or discard is applied, revealing what left the hand.
type Action struct {
	Type     ActionType
	Actor    uint8
	Slot     uint8
	Receiver uint8
	Mask     []bool
	Colour   Colour
	Value    uint8
	Card     Card
}

// Play constructs a play of the card at slot.
func Play(actor, slot uint8) Action {
	return Action{Type: ActionPlay, Actor: actor, Slot: slot, Receiver: NoPlayer, Colour: NoColour, Card: EmptyCard}
}

// Discard constructs a discard of the card at slot.
func Discard(actor, slot uint8) Action {
	return Action{Type: ActionDiscard, Actor: actor, Slot: slot, Receiver: NoPlayer, Colour: NoColour, Card: EmptyCard}
}

// HintColour constructs a colour hint to receiver.
func HintColour(actor, receiver uint8, mask []bool, c Colour) Action {
	return Action{Type: ActionHintColour, Actor: actor, Receiver: receiver, Mask: mask, Colour: c, Card: EmptyCard}
}

// HintValue constructs a value hint to receiver.
func HintValue(actor, receiver uint8, mask []bool, value uint8) Action {
	return Action{Type: ActionHintValue, Actor: actor, Receiver: receiver, Mask: mask, Colour: NoColour, Value: value, Card: EmptyCard}
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlay, ActionDiscard:
		return fmt.Sprintf("%s(%d)", a.Type, a.Slot)
	case ActionHintColour:
		return fmt.Sprintf("%s(p%d,%s)", a.Type, a.Receiver, a.Colour)
	case ActionHintValue:
		return fmt.Sprintf("%s(p%d,%d)", a.Type, a.Receiver, a.Value)
	}
	return "unknown"
}
