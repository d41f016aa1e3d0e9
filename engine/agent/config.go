package agent

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config selects and parameterises a rule cascade.
type Config struct {
	// Variant names a preset rule order; see Variants.
	Variant string `yaml:"variant"`
	// Rules, when non-empty, overrides the variant's order.
	Rules []RuleName `yaml:"rules"`

	// SkipDiscardAtMaxHints makes the known-discard and discard-oldest rules
	// abstain while the hint pool is full. Discarding there is legal, it just
	// earns nothing.
	SkipDiscardAtMaxHints bool `yaml:"skipDiscardAtMaxHints"`
	// GuessProbability is the per-fuse-token chance of a blind play.
	GuessProbability float64 `yaml:"guessProbability"`
	// DispensableHintBelow gates the dispensable hint on hintTokens < value.
	DispensableHintBelow uint8 `yaml:"dispensableHintBelow"`
}

// DefaultConfig returns the canonical cascade settings.
func DefaultConfig() Config {
	return Config{
		Variant:               VariantBradical,
		SkipDiscardAtMaxHints: true,
		GuessProbability:      DefaultGuessProbability,
		DispensableHintBelow:  DefaultDispensableHintBelow,
	}
}

// LoadConfig reads a YAML cascade config from path. Fields absent from the
// file keep their defaults.
func LoadConfig(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading agent config [%s]", path)
	}
	cfg, err := ParseConfig(bytes)
	if err != nil {
		return Config{}, errors.Wrapf(err, "agent config [%s]", path)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing YAML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RuleOrder resolves the effective rule list: the explicit Rules if given,
// otherwise the variant's preset.
func (c Config) RuleOrder() ([]RuleName, error) {
	if len(c.Rules) > 0 {
		return c.Rules, nil
	}
	variant := c.Variant
	if variant == "" {
		variant = VariantBradical
	}
	order, ok := Variants[variant]
	if !ok {
		return nil, errors.Errorf("unknown variant %q", variant)
	}
	return order, nil
}

// Validate checks that the cascade can be built and always ends in an
// action: every rule must exist and the last must be the terminal discard.
func (c Config) Validate() error {
	if c.GuessProbability < 0 || c.GuessProbability > 1 {
		return errors.Errorf("guessProbability %v outside [0,1]", c.GuessProbability)
	}
	order, err := c.RuleOrder()
	if err != nil {
		return err
	}
	known := make(map[RuleName]bool, len(AllRules))
	for _, r := range AllRules {
		known[r] = true
	}
	for _, r := range order {
		if !known[r] {
			return errors.Wrapf(ErrUnknownRule, "%q", r)
		}
	}
	if len(order) == 0 || order[len(order)-1] != RuleDiscardRandom {
		return errors.Errorf("cascade must end with %q", RuleDiscardRandom)
	}
	return nil
}
