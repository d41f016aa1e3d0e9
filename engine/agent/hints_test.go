package agent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/Tychonus/HanabAI/engine"
)

func TestEncodeSkipsEmptySlots(t *testing.T) {
	hand := []engine.Card{card(engine.Red, 1), engine.EmptyCard, card(engine.Red, 4), card(engine.Blue, 1), engine.HiddenCard}

	assert.Equal(t, []bool{true, false, true, false, false}, EncodeColour(hand, engine.Red))
	assert.Equal(t, []bool{true, false, false, true, false}, EncodeValue(hand, 1))
	assert.Equal(t, []bool{false, false, false, false, false}, EncodeValue(hand, 5))
}

// TestHintForIsLegal verifies every hint HintFor builds passes the engine's
// mask check.
func TestHintForIsLegal(t *testing.T) {
	g := engine.NewGame(5, engine.DefaultRules(4))
	g.Deal()
	hand := g.Hand(1)
	for slot := range hand {
		for _, kind := range []HintKind{HintByColour, HintByValue} {
			a := HintFor(0, 1, hand, slot, kind)
			require.NoError(t, g.CheckAction(a), "slot %d kind %d", slot, kind)
			assert.True(t, a.Mask[slot], "hint must mark the chosen slot")
		}
	}
}

func TestDecodeMarkedSlotsOnly(t *testing.T) {
	k := NewKnowledge(4)
	k.Slots[1] = SlotKnowledge{Colour: engine.Blue, Value: 2}

	ok := Decode(&k, engine.HintColour(1, 0, []bool{true, false, false, true}, engine.Green))
	require.True(t, ok)

	want := NewKnowledge(4)
	want.Slots[0].Colour = engine.Green
	want.Slots[1] = SlotKnowledge{Colour: engine.Blue, Value: 2}
	want.Slots[3].Colour = engine.Green
	if diff := cmp.Diff(want, k); diff != "" {
		t.Errorf("knowledge mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOverwritesStaleAttribute(t *testing.T) {
	k := NewKnowledge(3)
	k.Slots[0] = SlotKnowledge{Colour: engine.Red, Value: 4}

	Decode(&k, engine.HintValue(1, 0, []bool{true, false, false}, 2))

	assert.Equal(t, SlotKnowledge{Colour: engine.Red, Value: 2}, k.At(0))
}

func TestDecodeIdempotent(t *testing.T) {
	hints := []engine.Action{
		engine.HintColour(1, 0, []bool{true, true, false, false, false}, engine.White),
		engine.HintValue(2, 0, []bool{false, true, false, false, true}, 5),
	}
	for _, h := range hints {
		once := NewKnowledge(5)
		Decode(&once, h)
		twice := once
		Decode(&twice, h)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("re-applying %s changed knowledge:\n%s", h, diff)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	malformed := []engine.Action{
		engine.HintColour(1, 0, []bool{true, false}, engine.Red),                 // wrong length
		engine.HintColour(1, 0, []bool{true, false, false}, engine.NoColour),     // no colour
		engine.HintValue(1, 0, []bool{true, false, false}, 0),                    // no value
		engine.HintValue(1, 0, []bool{true, false, false}, 6),                    // value out of range
		{Type: engine.ActionPlay, Mask: []bool{true, false, false}, Value: 1},   // not a hint
	}
	for _, a := range malformed {
		k := NewKnowledge(3)
		assert.False(t, Decode(&k, a), "%+v", a)
		assert.Equal(t, NewKnowledge(3), k)
	}
}
