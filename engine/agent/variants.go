package agent

// Preset cascade names.
const (
	VariantBradical = "bradical"
	VariantBrad     = "brad"
	VariantLegacy   = "legacy"
)

// Variants maps each preset to its rule order. The agents differ only here;
// knowledge tracking is shared.
var Variants = map[string][]RuleName{
	// The full cascade.
	VariantBradical: {
		RuleEndGameSafety,
		RuleKnownSafePlay,
		RuleInformativeHint,
		RuleDispensableHint,
		RuleKnownDiscard,
		RuleRandomHint,
		RuleDiscardOldest,
		RuleDiscardRandom,
	},
	// Play what is known, drop what is known useless, otherwise help.
	VariantBrad: {
		RuleKnownSafePlay,
		RuleKnownDiscard,
		RuleInformativeHint,
		RuleDiscardRandom,
	},
	// Earlier ordering: the end-game check after the known play, discards
	// before the random hint, and a blind guess before the last resort.
	VariantLegacy: {
		RuleKnownSafePlay,
		RuleEndGameSafety,
		RuleInformativeHint,
		RuleDispensableHint,
		RuleKnownDiscard,
		RuleDiscardOldest,
		RuleRandomHint,
		RuleGuessPlay,
		RuleDiscardRandom,
	},
}
