package agent

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/Tychonus/HanabAI/engine"
)

func newTestSelector(t *testing.T, cfg Config, opts ...Option) (*Selector, *logtest.Hook) {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	opts = append([]Option{WithLogger(log.WithField("component", "agent"))}, opts...)
	sel, err := NewSelector(cfg, opts...)
	require.NoError(t, err)
	return sel, hook
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

// rejectingState is a snapshot whose game refuses every action.
type rejectingState struct {
	*engine.View
}

func (rejectingState) CheckAction(engine.Action) error {
	return errors.Wrap(engine.ErrIllegalAction, "rejected by test")
}

// ---------------------------------------------------------------------------
// Decisions
// ---------------------------------------------------------------------------

func TestFreshHandNeverPlays(t *testing.T) {
	sel, _ := newTestSelector(t, DefaultConfig())
	for seed := uint64(1); seed <= 20; seed++ {
		g := engine.NewGame(seed, engine.DefaultRules(4))
		g.Deal()
		require.Equal(t, uint8(4), g.Rules.HandSize)

		st := agentFor(&g, 0)
		v := g.View(0)
		d, err := sel.Decide(&st, &v, newRng(seed))
		require.NoError(t, err, "seed %d", seed)
		assert.NotEqual(t, engine.ActionPlay, d.Action.Type, "seed %d", seed)
		assert.NoError(t, g.CheckAction(d.Action))
	}
}

func TestKnownPlayFromReceivedHints(t *testing.T) {
	g := stackedGame(t, 3)
	mask := []bool{true, false, false, false, false}
	g.History = []engine.Action{
		engine.HintColour(1, 0, mask, engine.Red),
		engine.HintValue(2, 0, mask, 1),
	}
	sel, _ := newTestSelector(t, DefaultConfig())
	st := agentFor(&g, 0)
	st.Recency.Vacate(2)

	v := g.View(0)
	d, err := sel.Decide(&st, &v, newRng(1))
	require.NoError(t, err)
	assert.Equal(t, RuleKnownSafePlay, d.Rule)
	assert.Equal(t, engine.Play(0, 0), d.Action)

	assert.Equal(t, Unhinted, st.Knowledge.At(0), "played slot forgets its hints")
	assert.Equal(t, [engine.MaxHandSize]uint8{1, 3, 4, 2, 0}, st.Recency.Order)
}

func TestNoTokensSkipsHints(t *testing.T) {
	g := stackedGame(t, 3)
	g.HintTokens = 0
	g.Fireworks[engine.Green] = 2
	g.Players[1].Hand[0] = card(engine.Red, 1)   // playable
	g.Players[2].Hand[0] = card(engine.Green, 1) // dispensable

	sel, _ := newTestSelector(t, DefaultConfig())
	for seed := uint64(0); seed < 10; seed++ {
		st := agentFor(&g, 0)
		v := g.View(0)
		d, err := sel.Decide(&st, &v, newRng(seed))
		require.NoError(t, err)
		assert.False(t, d.Action.Type.IsHint())
		assert.Equal(t, RuleDiscardOldest, d.Rule)
		assert.Equal(t, engine.Discard(0, 0), d.Action)
	}
}

func TestLastFuseWithExhaustedDeck(t *testing.T) {
	g := stackedGame(t, 3)
	exhaustDeck(&g)
	g.FuseTokens = 1
	g.HintTokens = 0

	sel, _ := newTestSelector(t, DefaultConfig())
	st := agentFor(&g, 0)
	v := g.View(0)
	d, err := sel.Decide(&st, &v, newRng(5))
	require.NoError(t, err)
	assert.Equal(t, RuleDiscardRandom, d.Rule)

	g.HintTokens = 8
	st = agentFor(&g, 0)
	v = g.View(0)
	d, err = sel.Decide(&st, &v, newRng(5))
	require.NoError(t, err)
	assert.Equal(t, RuleRandomHint, d.Rule)
	assert.Equal(t, uint8(1), d.Action.Receiver)
}

// ---------------------------------------------------------------------------
// Failure paths
// ---------------------------------------------------------------------------

func TestDecideAbortsOnRejectedAction(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	sel, hook := newTestSelector(t, DefaultConfig(), WithMetrics(m))

	g := stackedGame(t, 2)
	st := agentFor(&g, 0)
	st.Knowledge.Slots[0] = SlotKnowledge{Colour: engine.Red, Value: 1}
	before := st

	v := g.View(0)
	_, err := sel.Decide(&st, rejectingState{&v}, newRng(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrIllegalAction))
	assert.Equal(t, before, st, "aborted decision must not touch agent state")

	assert.Equal(t, 1.0, counterValue(t, m.aborted))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, RuleKnownSafePlay, hook.LastEntry().Data["rule"])
}

func TestDecideNoRuleFired(t *testing.T) {
	sel, _ := newTestSelector(t, DefaultConfig(), WithCascade(NewCascade(knownSafePlay{})))

	g := stackedGame(t, 2)
	st := agentFor(&g, 0)
	v := g.View(0)
	_, err := sel.Decide(&st, &v, newRng(1))
	assert.True(t, errors.Is(err, ErrNoRuleFired))
}

func TestDecisionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	sel, hook := newTestSelector(t, DefaultConfig(), WithMetrics(m))

	g := stackedGame(t, 2)
	st := agentFor(&g, 0)
	st.Knowledge.Slots[1] = SlotKnowledge{Colour: engine.Green, Value: 1}
	v := g.View(0)
	_, err := sel.Decide(&st, &v, newRng(1))
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, m.decisions.WithLabelValues(string(RuleKnownSafePlay))))
	assert.Equal(t, 0.0, counterValue(t, m.aborted))
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "hanabai_agent_decisions_total")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeDecision(RuleDiscardRandom)
		m.observeAbort()
	})
}

func TestNewSelectorRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = []RuleName{RuleKnownSafePlay}
	_, err := NewSelector(cfg)
	assert.Error(t, err)
}

func TestSelectorRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = VariantBrad
	sel, _ := newTestSelector(t, cfg)
	assert.Equal(t, Variants[VariantBrad], sel.Rules())
}
