package agent

import (
	"github.com/pkg/errors"

	engine "github.com/Tychonus/HanabAI/engine"
)

// Decision is the outcome of one cascade evaluation.
type Decision struct {
	Action engine.Action
	Rule   RuleName
}

// Cascade is an ordered rule list. The first rule that does not abstain
// decides the turn; there is no scoring and no backtracking.
type Cascade struct {
	rules []Rule
}

// NewCascade wraps an explicit rule list, mostly for tests.
func NewCascade(rules ...Rule) Cascade {
	return Cascade{rules: rules}
}

// BuildCascade instantiates the rules named in order with the parameters
// from cfg.
func BuildCascade(order []RuleName, cfg Config) (Cascade, error) {
	rules := make([]Rule, 0, len(order))
	for _, name := range order {
		r, err := buildRule(name, cfg)
		if err != nil {
			return Cascade{}, err
		}
		rules = append(rules, r)
	}
	return Cascade{rules: rules}, nil
}

func buildRule(name RuleName, cfg Config) (Rule, error) {
	switch name {
	case RuleEndGameSafety:
		return endGameSafety{probability: cfg.GuessProbability}, nil
	case RuleKnownSafePlay:
		return knownSafePlay{}, nil
	case RuleInformativeHint:
		return informativeHint{}, nil
	case RuleDispensableHint:
		return dispensableHint{below: cfg.DispensableHintBelow}, nil
	case RuleKnownDiscard:
		return knownDiscard{skipAtMax: cfg.SkipDiscardAtMaxHints}, nil
	case RuleRandomHint:
		return randomHint{}, nil
	case RuleDiscardOldest:
		return discardOldest{skipAtMax: cfg.SkipDiscardAtMaxHints}, nil
	case RuleDiscardRandom:
		return discardRandom{}, nil
	case RuleGuessPlay:
		return guessPlay{probability: cfg.GuessProbability}, nil
	}
	return nil, errors.Wrapf(ErrUnknownRule, "%q", name)
}

// Names returns the rule names in evaluation order.
func (c Cascade) Names() []RuleName {
	out := make([]RuleName, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Name()
	}
	return out
}

// Evaluate runs the rules in order and returns the first action produced.
func (c Cascade) Evaluate(t *Turn) (Decision, error) {
	for _, r := range c.rules {
		if a, ok := r.Evaluate(t); ok {
			return Decision{Action: a, Rule: r.Name()}, nil
		}
	}
	return Decision{}, ErrNoRuleFired
}
