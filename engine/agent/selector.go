package agent

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Selector turns a game snapshot and an agent's private state into one
// action. It holds no per-agent state, so one Selector can serve every seat.
type Selector struct {
	cascade Cascade
	log     *logrus.Entry
	metrics *Metrics
}

// Option customises a Selector.
type Option func(*Selector)

// WithLogger sets the logger decisions are reported to.
func WithLogger(l *logrus.Entry) Option {
	return func(s *Selector) { s.log = l }
}

// WithMetrics records decisions on m.
func WithMetrics(m *Metrics) Option {
	return func(s *Selector) { s.metrics = m }
}

// WithCascade replaces the configured cascade.
func WithCascade(c Cascade) Option {
	return func(s *Selector) { s.cascade = c }
}

// NewSelector validates cfg and builds its cascade.
func NewSelector(cfg Config, opts ...Option) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid agent config")
	}
	order, err := cfg.RuleOrder()
	if err != nil {
		return nil, err
	}
	cascade, err := BuildCascade(order, cfg)
	if err != nil {
		return nil, err
	}
	s := &Selector{
		cascade: cascade,
		log:     logrus.WithField("component", "agent"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Rules returns the selector's rule order.
func (s *Selector) Rules() []RuleName { return s.cascade.Names() }

// Decide makes one decision for the agent whose state is st:
//  1. replay hints received since the agent's last turn;
//  2. evaluate the cascade, first match wins;
//  3. check the action with the game. A rejection is a defect in the
//     cascade's guards and aborts the call; nothing is retried;
//  4. for a play or discard, forget the slot and mark it newest.
func (s *Selector) Decide(st *AgentState, view State, rng *rand.Rand) (Decision, error) {
	st.Knowledge.Refresh(view.History(), st.Seat, st.NumPlayers)

	turn := &Turn{State: view, Agent: st, Rng: rng}
	d, err := s.cascade.Evaluate(turn)
	if err == nil {
		err = view.CheckAction(d.Action)
	}
	if err != nil {
		s.metrics.observeAbort()
		s.log.WithFields(logrus.Fields{
			"seat": st.Seat,
			"turn": view.TurnNumber(),
			"rule": d.Rule,
		}).WithError(err).Error("Aborting decision")
		return Decision{}, errors.Wrapf(err, "seat %d turn %d", st.Seat, view.TurnNumber())
	}

	st.afterAction(d.Action)
	s.metrics.observeDecision(d.Rule)
	s.log.WithFields(logrus.Fields{
		"seat":   st.Seat,
		"turn":   view.TurnNumber(),
		"rule":   d.Rule,
		"action": d.Action.String(),
	}).Debug("Decided")
	return d, nil
}

// Player is one seated agent: its identity, its private state, and the one
// random source all of its decisions draw from.
type Player struct {
	ID    uuid.UUID
	State AgentState

	rng      *rand.Rand
	selector *Selector
}

// NewPlayer seats an agent. This is the agent's only initialisation; player
// count, seat and hand size are fixed from here on.
func NewPlayer(id uuid.UUID, sel *Selector, numPlayers, seat, handSize uint8, rng *rand.Rand) *Player {
	return &Player{
		ID:       id,
		State:    NewAgentState(numPlayers, seat, handSize),
		rng:      rng,
		selector: sel,
	}
}

// Act decides this player's action for the snapshot.
func (p *Player) Act(view State) (Decision, error) {
	return p.selector.Decide(&p.State, view, p.rng)
}
