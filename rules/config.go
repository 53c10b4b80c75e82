package rules

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/substance"
)

// replaceMap is a JSON object mapping a from-effect token to a to-effect
// token, e.g. {"Fo": "Cy"}.
type replaceMap map[string]string

type ruleJSON struct {
	RequiresSubstance string     `json:"requires_substance"`
	IfPresent         []string   `json:"if_present"`
	IfNotPresent      []string   `json:"if_not_present"`
	Replace           replaceMap `json:"replace"`
}

type effectsJSON struct {
	Substance string   `json:"substance"`
	Effect    []string `json:"effect"`
}

type configJSON struct {
	Effects     []effectsJSON     `json:"effects"`
	Rules       []ruleJSON        `json:"rules"`
	EffectPrice map[string]float64 `json:"effect_price"`
}

// Load reads and parses a rule configuration file from path.
func Load(path string) (*MixtureRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON rule configuration and builds a MixtureRules,
// topologically ordering each substance's rules so that a single Apply
// pass resolves any cascade. Parse rejects unknown effect tokens and
// cyclic rule dependencies; it silently skips rule or inherent-effect
// entries naming an unrecognized substance letter.
func Parse(data []byte) (*MixtureRules, error) {
	var cfg configJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("rules: parse config: %w", err)
	}

	var raw [substance.S][]Rule

	for _, rj := range cfg.Rules {
		s, ok := substance.ParseCode(substanceCode(rj.RequiresSubstance))
		if !ok {
			continue
		}

		ifPresent, err := parseEffectSet(rj.IfPresent)
		if err != nil {
			return nil, err
		}
		ifNotPresent, err := parseEffectSet(rj.IfNotPresent)
		if err != nil {
			return nil, err
		}

		replace := make([]ReplacePair, 0, len(rj.Replace))
		for from, to := range rj.Replace {
			fe, err := effect.ParseCode(from)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnknownEffect, err)
			}
			te, err := effect.ParseCode(to)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrUnknownEffect, err)
			}
			replace = append(replace, ReplacePair{From: fe, To: te})
		}

		raw[s] = append(raw[s], Rule{
			IfPresent:    ifPresent,
			IfNotPresent: ifNotPresent,
			Replace:      replace,
		})
	}

	var ordered [substance.S][]Rule
	for s := range raw {
		o, err := topologicalOrder(raw[s])
		if err != nil {
			return nil, fmt.Errorf("rules: %s: %w", substance.Substance(s), err)
		}
		ordered[s] = o
	}

	var inherent [substance.S]effect.Set
	for _, ej := range cfg.Effects {
		s, ok := substance.ParseCode(substanceCode(ej.Substance))
		if !ok {
			continue
		}
		set, err := parseEffectSet(ej.Effect)
		if err != nil {
			return nil, err
		}
		inherent[s] = inherent[s].Union(set)
	}

	var priceWeight [effect.N]float64
	for code, weight := range cfg.EffectPrice {
		e, err := effect.ParseCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownEffect, err)
		}
		priceWeight[e] = weight
	}

	return &MixtureRules{bySubstance: ordered, inherent: inherent, priceWeight: priceWeight}, nil
}

// substanceCode extracts the single wire byte from a one-character JSON
// string; an empty or multi-character string maps to a code no substance
// uses, so ParseCode reports it unknown.
func substanceCode(s string) byte {
	if len(s) != 1 {
		return 0
	}
	return s[0]
}

func parseEffectSet(codes []string) (effect.Set, error) {
	var set effect.Set
	for _, c := range codes {
		e, err := effect.ParseCode(c)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrUnknownEffect, err)
		}
		set = set.With(e)
	}
	return set, nil
}
