package agent

import "github.com/pkg/errors"

// Complete is the playable value of a colour whose firework is finished.
// Every card value compares strictly below it, so every card of a complete
// colour reads as dispensable.
const Complete uint8 = 0xFF

// Unknown is the value of a slot whose value has never been hinted.
const Unknown uint8 = 0

// DefaultGuessProbability is the per-fuse-token chance of a blind play.
const DefaultGuessProbability = 0.05

// DefaultDispensableHintBelow is the hint-token count under which hints about
// useless cards are considered.
const DefaultDispensableHintBelow uint8 = 4

// RuleName identifies one rule of the cascade in configs, logs and metrics.
type RuleName string

const (
	RuleEndGameSafety   RuleName = "end-game-safety"
	RuleKnownSafePlay   RuleName = "known-safe-play"
	RuleInformativeHint RuleName = "informative-hint"
	RuleDispensableHint RuleName = "dispensable-hint"
	RuleKnownDiscard    RuleName = "known-discard"
	RuleRandomHint      RuleName = "random-hint"
	RuleDiscardOldest   RuleName = "discard-oldest"
	RuleDiscardRandom   RuleName = "discard-random"
	RuleGuessPlay       RuleName = "guess-play"
)

// AllRules lists every rule the cascade knows how to build.
var AllRules = []RuleName{
	RuleEndGameSafety,
	RuleKnownSafePlay,
	RuleInformativeHint,
	RuleDispensableHint,
	RuleKnownDiscard,
	RuleRandomHint,
	RuleDiscardOldest,
	RuleDiscardRandom,
	RuleGuessPlay,
}

var (
	// ErrNoRuleFired means every rule abstained. The terminal rule makes this
	// unreachable while the agent holds a card.
	ErrNoRuleFired = errors.New("no rule produced an action")
	// ErrUnknownRule is returned for a rule name with no implementation.
	ErrUnknownRule = errors.New("unknown rule")
)
