package agent

import (
	engine "github.com/Tychonus/HanabAI/engine"
)

// Recency orders hand slots by when their card arrived, oldest first.
type Recency struct {
	Order [engine.MaxHandSize]uint8
	Len   uint8
}

// NewRecency returns the order for a freshly dealt hand. Slot 0 was dealt
// first, so it starts as the oldest.
func NewRecency(handSize uint8) Recency {
	r := Recency{Len: handSize}
	for i := uint8(0); i < handSize; i++ {
		r.Order[i] = i
	}
	return r
}

// Vacate records that slot lost its card. The next card drawn lands in the
// same slot, so it moves to the newest position.
// No-op if slot is not tracked.
func (r *Recency) Vacate(slot uint8) {
	for i := uint8(0); i < r.Len; i++ {
		if r.Order[i] == slot {
			for j := i; j < r.Len-1; j++ {
				r.Order[j] = r.Order[j+1]
			}
			r.Order[r.Len-1] = slot
			return
		}
	}
}

// Oldest returns the least recently filled slot that still holds a card.
// occupied is indexed by slot.
func (r *Recency) Oldest(occupied []bool) (uint8, bool) {
	for i := uint8(0); i < r.Len; i++ {
		s := r.Order[i]
		if int(s) < len(occupied) && occupied[s] {
			return s, true
		}
	}
	return 0, false
}
