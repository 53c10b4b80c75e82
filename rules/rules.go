package rules

import (
	"github.com/mixgraph/mixgraph/effect"
	"github.com/mixgraph/mixgraph/substance"
)

// maxEffects is the cap on effect-set size after a substance's inherent
// effects are folded in; once reached, further inherent effects are
// silently dropped.
const maxEffects = 8

// MixtureRules is an immutable, loaded rule table: one ordered rule list
// and one inherent-effect list per substance, plus a per-effect price
// multiplier table. It is safe for concurrent read access.
type MixtureRules struct {
	bySubstance [substance.S][]Rule
	inherent    [substance.S]effect.Set
	priceWeight [effect.N]float64
}

// Apply runs s's rules against effects in their fixed load-time order,
// then folds in s's inherent effects up to the eight-effect cap, and
// returns the resulting set. effects is left unmodified.
func (m *MixtureRules) Apply(s substance.Substance, effects effect.Set) effect.Set {
	out := effects
	for _, rule := range m.bySubstance[s] {
		if !out.ContainsAll(rule.IfPresent) {
			continue
		}
		if !out.DisjointFrom(rule.IfNotPresent) {
			continue
		}
		for _, pair := range rule.Replace {
			if out.Has(pair.From) {
				out = out.Without(pair.From).With(pair.To)
			}
		}
	}

	for _, e := range m.inherent[s].Effects() {
		if out.Len() >= maxEffects {
			break
		}
		out = out.With(e)
	}

	return out
}

// PriceMultiplier returns 1.0 plus the sum of each present effect's price
// weight. An effect with no configured weight contributes zero.
func (m *MixtureRules) PriceMultiplier(effects effect.Set) float64 {
	multiplier := 1.0
	for _, e := range effects.Effects() {
		multiplier += m.priceWeight[e]
	}
	return multiplier
}

// PriceWeights returns the per-effect price weight table, indexed by
// effect.Effect. Used by the metadata command to print the configured
// weights; results artifacts store per-node multipliers, not this table.
func (m *MixtureRules) PriceWeights() [effect.N]float64 {
	return m.priceWeight
}
