package agent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	engine "github.com/Tychonus/HanabAI/engine"
)

func TestRefreshEmptyHistory(t *testing.T) {
	k := NewKnowledge(5)
	k.Refresh(nil, 0, 3)
	k.Refresh([]engine.Action{}, 0, 3)
	assert.Equal(t, NewKnowledge(5), k)
}

// TestRefreshShortHistory verifies the first turns only look as far back as
// the game has gone.
func TestRefreshShortHistory(t *testing.T) {
	k := NewKnowledge(4)
	history := []engine.Action{
		engine.HintValue(0, 2, []bool{true, false, false, false}, 1),
	}
	k.Refresh(history, 2, 4)
	assert.Equal(t, uint8(1), k.At(0).Value)
}

// TestRefreshWindow verifies only the last numPlayers-1 actions are replayed
// and only hints addressed to self count.
func TestRefreshWindow(t *testing.T) {
	history := []engine.Action{
		engine.HintColour(1, 0, []bool{true, false, false, false}, engine.Red), // previous round
		engine.Discard(0, 3),
		engine.HintValue(1, 0, []bool{false, true, false, false}, 3),
		engine.HintColour(2, 1, []bool{false, false, true, false}, engine.Blue), // to someone else
		engine.HintColour(3, 0, []bool{false, false, true, true}, engine.White),
	}
	k := NewKnowledge(4)
	k.Refresh(history, 0, 4)

	want := NewKnowledge(4)
	want.Slots[1].Value = 3
	want.Slots[2].Colour = engine.White
	want.Slots[3].Colour = engine.White
	if diff := cmp.Diff(want, k); diff != "" {
		t.Errorf("knowledge mismatch (-want +got):\n%s", diff)
	}
}

// TestRefreshNeverReplaysAcrossRounds verifies a hint that preceded the
// agent's last play is not applied again to the slot's new card.
func TestRefreshNeverReplaysAcrossRounds(t *testing.T) {
	hint := engine.HintColour(1, 0, []bool{true, false, false}, engine.Green)
	k := NewKnowledge(3)

	history := []engine.Action{hint}
	k.Refresh(history, 0, 2)
	assert.Equal(t, engine.Green, k.At(0).Colour)

	history = append(history, engine.Play(0, 0))
	k.Reset(0)
	history = append(history, engine.Discard(1, 2))
	k.Refresh(history, 0, 2)
	assert.Equal(t, Unhinted, k.At(0))
}

func TestRefreshIgnoresMalformed(t *testing.T) {
	history := []engine.Action{
		engine.HintColour(1, engine.NoPlayer, []bool{true, true, true}, engine.Red),
		engine.HintValue(2, 0, []bool{true}, 2),
		engine.HintColour(3, 0, []bool{true, false, false}, engine.Yellow),
	}
	k := NewKnowledge(3)
	k.Refresh(history, 0, 4)

	want := NewKnowledge(3)
	want.Slots[0].Colour = engine.Yellow
	assert.Equal(t, want, k)
}

func TestResetForgetsSlot(t *testing.T) {
	k := NewKnowledge(2)
	k.Slots[1] = SlotKnowledge{Colour: engine.Red, Value: 5}
	assert.True(t, k.At(1).Complete())

	k.Reset(1)
	assert.Equal(t, Unhinted, k.At(1))
	assert.False(t, k.At(1).HasColour())
	assert.False(t, k.At(1).HasValue())
}
