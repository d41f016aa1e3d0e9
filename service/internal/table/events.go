package table

import (
	"github.com/google/uuid"

	engine "github.com/Tychonus/HanabAI/engine"
	"github.com/Tychonus/HanabAI/engine/agent"
)

// EventType names a table event.
type EventType string

const (
	EventPlayerSeated EventType = "player_seated" // An agent took a seat.
	EventGameStart    EventType = "game_start"    // Cards were dealt.
	EventPlayerAction EventType = "player_action" // A turn was applied.
	EventGameEnd      EventType = "game_end"      // The game finished; Score is final.
)

// EventUser identifies the player an event concerns.
type EventUser struct {
	ID   uuid.UUID `json:"id"`
	Seat uint8     `json:"seat"`
}

// Event is one observable change at a table.
type Event struct {
	Type EventType  `json:"type"`
	User *EventUser `json:"user,omitempty"`

	Turn   int    `json:"turn"`
	Action string `json:"action,omitempty"`
	Rule   string `json:"rule,omitempty"`

	HintTokens uint8 `json:"hintTokens"`
	FuseTokens uint8 `json:"fuseTokens"`
	Score      int   `json:"score"`
}

// fireEvent hands ev to BroadcastFn, if one is set.
func (t *Table) fireEvent(ev Event) {
	if t.BroadcastFn == nil {
		return
	}
	ev.HintTokens = t.Game.HintTokens
	ev.FuseTokens = t.Game.FuseTokens
	ev.Score = t.Game.Score()
	t.BroadcastFn(ev)
}

func (t *Table) userAt(seat uint8) *EventUser {
	return &EventUser{ID: t.SeatToPlayer[seat], Seat: seat}
}

// actionEvent describes action a, just applied for seat.
func (t *Table) actionEvent(seat uint8, a engine.Action, rule agent.RuleName) Event {
	return Event{
		Type:   EventPlayerAction,
		User:   t.userAt(seat),
		Turn:   int(t.Game.TurnNumber) - 1,
		Action: a.String(),
		Rule:   string(rule),
	}
}
