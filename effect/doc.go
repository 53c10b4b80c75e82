// Package effect defines the fixed universe of mixture effects and the
// EffectSet bitmask used to represent a bounded-size subset of them.
//
// The universe holds N=34 named effects. A Set is any subset of size ≤ K
// (K is enforced by callers — combinatorial, rules and effectgraph all
// reject or clip sets larger than the configured bound; Set itself is a
// plain bitmask with no size ceiling baked in, matching how the source
// implementation represents effects as a bare u64 of flags).
//
// Set bit i corresponds to Effect(i) in the order effects are declared
// below; that order is load-bearing, since combinatorial.Encoder's
// size-then-lex ordering contract is defined over these bit positions.
package effect
