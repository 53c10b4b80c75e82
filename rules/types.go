package rules

import (
	"errors"

	"github.com/mixgraph/mixgraph/effect"
)

var (
	// ErrCycle is returned when a substance's rules have a dependency cycle
	// (for example, rule A requires an effect rule B can produce, and B
	// requires an effect A can produce) and therefore admit no fixed
	// firing order.
	ErrCycle = errors.New("rules: cyclic rule dependency")

	// ErrUnknownEffect is returned when a rule or price-table entry names
	// an effect token that effect.ParseCode does not recognize.
	ErrUnknownEffect = errors.New("rules: unknown effect code")
)

// ReplacePair is one (from, to) entry in a rule's replace set.
type ReplacePair struct {
	From, To effect.Effect
}

// Rule is a single guarded rewrite: if every IfPresent effect is in the
// working set and every IfNotPresent effect is absent from it, every
// matched From effect in Replace is swapped for its paired To effect.
type Rule struct {
	IfPresent    effect.Set
	IfNotPresent effect.Set
	Replace      []ReplacePair
}

// produces reports whether this rule's replace set can add e to the
// working set.
func (r Rule) produces(e effect.Effect) bool {
	for _, p := range r.Replace {
		if p.To == e {
			return true
		}
	}
	return false
}
