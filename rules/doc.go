// Package rules implements a substance-scoped guarded rewrite engine:
// applying a substance to an effect set runs that substance's replace
// rules in a fixed order, then adds its inherent effects up to the
// eight-effect cap.
//
// A rule fires when every effect in IfPresent is present and every effect
// in IfNotPresent is absent; firing replaces each matched from/to pair in
// one atomic step. Because one substance can carry several rules whose
// firing order affects the final set (a rule can consume the effect
// another rule produces), rules are ordered once at load time by
// topologicalOrder and then replayed in that fixed order on every Apply
// call — this is what lets a multi-step cascade resolve in a single pass
// instead of needing repeated re-application.
//
// Configuration is JSON, parsed with github.com/goccy/go-json, and is
// grounded on original_source/src/mixing/mod.rs's RulesFile/RuleJson
// shape (effects, rules, effect_price). A rule naming an unrecognized
// substance letter is skipped, not fatal; a rule naming an unrecognized
// effect token is a load error; a cyclic rule dependency is a load error.
package rules
