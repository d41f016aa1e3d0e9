// Package table hosts one game in-process: it seats rule-based agents, drives
// their turns synchronously against the engine, and reports the result.
package table

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	engine "github.com/Tychonus/HanabAI/engine"
	"github.com/Tychonus/HanabAI/engine/agent"
	"github.com/Tychonus/HanabAI/service/internal/config"
)

var (
	// ErrTableFull is returned when every seat is already taken.
	ErrTableFull = errors.New("table is full")
	// ErrNotReady is returned when play is requested before every seat is
	// filled and the cards are dealt.
	ErrNotReady = errors.New("table is not ready")
)

// OnGameEndFunc is called once when a game finishes, with the table id and
// final score.
type OnGameEndFunc func(tableID uuid.UUID, score int)

// Table is a single game with its seated agents. Turns are strictly
// sequential; a Table is not safe for concurrent use.
type Table struct {
	ID   uuid.UUID
	Game engine.GameState

	PlayerToSeat map[uuid.UUID]uint8
	SeatToPlayer [engine.MaxPlayers]uuid.UUID

	BroadcastFn func(ev Event) // receives every table event; may be nil
	OnGameEnd   OnGameEndFunc

	players  [engine.MaxPlayers]*agent.Player
	seated   uint8
	started  bool
	finished bool

	selector *agent.Selector
	log      *logrus.Entry
}

// NewTable creates an empty table for rules, shuffling with seed. All agents
// share sel.
func NewTable(rules engine.Rules, seed uint64, sel *agent.Selector, log *logrus.Logger) (*Table, error) {
	if err := rules.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rules")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	id := uuid.New()
	return &Table{
		ID:           id,
		Game:         engine.NewGame(seed, rules),
		PlayerToSeat: make(map[uuid.UUID]uint8),
		selector:     sel,
		log:          log.WithField("table", id.String()),
	}, nil
}

// NewTableFromSettings wires process settings into a table: the agent YAML
// config if one is named, the log level, and the seed. extra is applied to
// the selector after the logger.
func NewTableFromSettings(s config.Settings, extra ...agent.Option) (*Table, error) {
	log := s.ConfigureLogger()

	cfg := agent.DefaultConfig()
	if s.AgentConfig != "" {
		var err error
		if cfg, err = agent.LoadConfig(s.AgentConfig); err != nil {
			return nil, err
		}
	}
	opts := append([]agent.Option{agent.WithLogger(log.WithField("component", "agent"))}, extra...)
	sel, err := agent.NewSelector(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return NewTable(engine.DefaultRules(s.Players), s.Seed, sel, log)
}

// Register seats a new agent for playerID at the next free seat. The agent's
// state is initialised here, once, with the table's player count and the
// assigned seat; agentSeed seeds its private random source.
func (t *Table) Register(playerID uuid.UUID, agentSeed uint64) (uint8, error) {
	if seat, ok := t.PlayerToSeat[playerID]; ok {
		return seat, nil
	}
	if t.started || t.seated >= t.Game.Rules.NumPlayers {
		return 0, ErrTableFull
	}
	seat := t.seated
	rng := rand.New(rand.NewPCG(agentSeed, uint64(seat)))
	t.players[seat] = agent.NewPlayer(playerID, t.selector, t.Game.Rules.NumPlayers, seat, t.Game.Rules.HandSize, rng)
	t.PlayerToSeat[playerID] = seat
	t.SeatToPlayer[seat] = playerID
	t.seated++
	t.log.WithFields(logrus.Fields{"player": playerID.String(), "seat": seat}).Info("Agent seated")
	t.fireEvent(Event{Type: EventPlayerSeated, User: t.userAt(seat)})
	return seat, nil
}

// Start deals the cards once every seat is filled.
func (t *Table) Start() error {
	if t.started {
		return nil
	}
	if t.seated < t.Game.Rules.NumPlayers {
		return errors.Wrapf(ErrNotReady, "%d of %d seats filled", t.seated, t.Game.Rules.NumPlayers)
	}
	t.Game.Deal()
	t.started = true
	t.log.WithField("players", t.seated).Info("Game started")
	t.fireEvent(Event{Type: EventGameStart})
	return nil
}

// Finished reports whether the game has ended.
func (t *Table) Finished() bool { return t.finished }

// Step asks the current player for an action and applies it.
func (t *Table) Step() error {
	if !t.started {
		return ErrNotReady
	}
	if t.finished {
		return engine.ErrGameOver
	}

	seat := t.Game.CurrentPlayer
	view := t.Game.View(seat)
	d, err := t.players[seat].Act(&view)
	if err != nil {
		return errors.Wrapf(err, "player %s", t.SeatToPlayer[seat])
	}
	a := d.Action
	if err := t.Game.ApplyAction(a); err != nil {
		return errors.Wrapf(err, "applying %s for seat %d", a, seat)
	}

	t.log.WithFields(logrus.Fields{
		"turn":   t.Game.TurnNumber - 1,
		"seat":   seat,
		"action": a.String(),
		"rule":   d.Rule,
		"hints":  t.Game.HintTokens,
		"fuses":  t.Game.FuseTokens,
	}).Debug("Turn played")
	t.fireEvent(t.actionEvent(seat, a, d.Rule))

	if t.Game.IsGameOver() {
		t.finish()
	}
	return nil
}

// Run plays turns until the game ends and returns the final score.
func (t *Table) Run() (int, error) {
	if err := t.Start(); err != nil {
		return 0, err
	}
	for !t.finished {
		if err := t.Step(); err != nil {
			return t.Game.Score(), err
		}
	}
	return t.Game.Score(), nil
}

func (t *Table) finish() {
	t.finished = true
	score := t.Game.Score()
	t.log.WithFields(logrus.Fields{
		"score": score,
		"turns": t.Game.TurnNumber,
		"fuses": t.Game.FuseTokens,
	}).Info("Game over")
	t.fireEvent(Event{Type: EventGameEnd, Turn: int(t.Game.TurnNumber)})
	if t.OnGameEnd != nil {
		t.OnGameEnd(t.ID, score)
	}
}
