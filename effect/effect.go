package effect

import (
	"errors"
	"fmt"
	"math/bits"
)

// Effect identifies one of the N named atomic effects by its bit position.
type Effect uint8

// The effect universe, in bit-position order. This order is load-bearing:
// combinatorial.Encoder's size-then-lex ordering contract is defined over
// the sorted list of bit positions, so renumbering these constants changes
// every Encoder's output.
const (
	AntiGravity Effect = iota
	Athletic
	Balding
	BrightEyed
	Calming
	CalorieDense
	Cyclopean
	Disorienting
	Electrifying
	Energizing
	Euphoric
	Explosive
	Focused
	Foggy
	Gingeritis
	Glowing
	Jennerising
	Laxative
	LongFaced
	Munchies
	Paranoia
	Refreshing
	Schizophrenia
	Sedating
	Shrinking
	SeizureInducing
	Slippery
	Smelly
	Sneaky
	Spicy
	Toxic
	ThoughtProvoking
	TropicThunder
	Zombifying

	// count is not an effect; it marks the size of the universe.
	count
)

// N is the size of the effect universe.
const N = int(count)

// ErrUnknownCode is returned by ParseCode for a two-character token that
// does not name a known effect.
var ErrUnknownCode = errors.New("effect: unknown effect code")

var names = [N]string{
	AntiGravity:      "AntiGravity",
	Athletic:         "Athletic",
	Balding:          "Balding",
	BrightEyed:       "BrightEyed",
	Calming:          "Calming",
	CalorieDense:     "CalorieDense",
	Cyclopean:        "Cyclopean",
	Disorienting:     "Disorienting",
	Electrifying:     "Electrifying",
	Energizing:       "Energizing",
	Euphoric:         "Euphoric",
	Explosive:        "Explosive",
	Focused:          "Focused",
	Foggy:            "Foggy",
	Gingeritis:       "Gingeritis",
	Glowing:          "Glowing",
	Jennerising:      "Jennerising",
	Laxative:         "Laxative",
	LongFaced:        "LongFaced",
	Munchies:         "Munchies",
	Paranoia:         "Paranoia",
	Refreshing:       "Refreshing",
	Schizophrenia:    "Schizophrenia",
	Sedating:         "Sedating",
	Shrinking:        "Shrinking",
	SeizureInducing:  "SeizureInducing",
	Slippery:         "Slippery",
	Smelly:           "Smelly",
	Sneaky:           "Sneaky",
	Spicy:            "Spicy",
	Toxic:            "Toxic",
	ThoughtProvoking: "ThoughtProvoking",
	TropicThunder:    "TropicThunder",
	Zombifying:       "Zombifying",
}

// codes maps each effect to its two-character wire token.
var codes = [N]string{
	AntiGravity:      "Ag",
	Athletic:         "At",
	Balding:          "Ba",
	BrightEyed:       "Be",
	Calming:          "Ca",
	CalorieDense:     "Cd",
	Cyclopean:        "Cy",
	Disorienting:     "Di",
	Electrifying:     "El",
	Energizing:       "En",
	Euphoric:         "Eu",
	Explosive:        "Ex",
	Focused:          "Fc",
	Foggy:            "Fo",
	Gingeritis:       "Gi",
	Glowing:          "Gl",
	Jennerising:      "Je",
	Laxative:         "La",
	LongFaced:        "Lf",
	Munchies:         "Mu",
	Paranoia:         "Pa",
	Refreshing:       "Re",
	Schizophrenia:    "Sc",
	Sedating:         "Se",
	Shrinking:        "Sh",
	SeizureInducing:  "Si",
	Slippery:         "Sl",
	Smelly:           "Sm",
	Sneaky:           "Sn",
	Spicy:            "Sp",
	Toxic:            "To",
	ThoughtProvoking: "Tp",
	TropicThunder:    "Tt",
	Zombifying:       "Zo",
}

var codeToEffect map[string]Effect

func init() {
	codeToEffect = make(map[string]Effect, N)
	for e, c := range codes {
		codeToEffect[c] = Effect(e)
	}
}

// String returns the effect's declared name.
func (e Effect) String() string {
	if int(e) < 0 || int(e) >= N {
		return fmt.Sprintf("Effect(%d)", e)
	}
	return names[e]
}

// Code returns the effect's two-character wire token.
func (e Effect) Code() string {
	if int(e) < 0 || int(e) >= N {
		return ""
	}
	return codes[e]
}

// ParseCode resolves a two-character wire token to its Effect.
// An unrecognized token is a fatal config error, reported as
// ErrUnknownCode.
func ParseCode(code string) (Effect, error) {
	e, ok := codeToEffect[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
	return e, nil
}

// Set is a bounded-size subset of the effect universe represented as a
// bitmask: bit i set means Effect(i) is present.
type Set uint64

// Empty is the empty effect set.
const Empty Set = 0

// NewSet builds a Set from the given effects.
func NewSet(effects ...Effect) Set {
	var s Set
	for _, e := range effects {
		s = s.With(e)
	}
	return s
}

// With returns s with e added.
func (s Set) With(e Effect) Set {
	return s | (1 << uint(e))
}

// Without returns s with e removed.
func (s Set) Without(e Effect) Set {
	return s &^ (1 << uint(e))
}

// Has reports whether e is present in s.
func (s Set) Has(e Effect) bool {
	return s&(1<<uint(e)) != 0
}

// Len returns |s|, the number of effects present.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Union returns s ∪ other.
func (s Set) Union(other Set) Set {
	return s | other
}

// Intersect returns s ∩ other.
func (s Set) Intersect(other Set) Set {
	return s & other
}

// Subtract returns s \ other.
func (s Set) Subtract(other Set) Set {
	return s &^ other
}

// ContainsAll reports whether s ⊇ other.
func (s Set) ContainsAll(other Set) bool {
	return s&other == other
}

// DisjointFrom reports whether s ∩ other = ∅.
func (s Set) DisjointFrom(other Set) bool {
	return s&other == 0
}

// Effects returns the members of s in ascending bit-position order.
func (s Set) Effects() []Effect {
	out := make([]Effect, 0, s.Len())
	for i := 0; i < N; i++ {
		if s.Has(Effect(i)) {
			out = append(out, Effect(i))
		}
	}
	return out
}

// Bits returns the raw bitmask.
func (s Set) Bits() uint64 {
	return uint64(s)
}

// FromBits wraps a raw bitmask as a Set. The caller is responsible for any
// size-bound contract (combinatorial.Encoder enforces |S| ≤ K on encode).
func FromBits(bitmask uint64) Set {
	return Set(bitmask)
}

// String renders s as a comma-separated list of effect names, e.g. "{}" or
// "{Calming, Energizing}".
func (s Set) String() string {
	effects := s.Effects()
	out := "{"
	for i, e := range effects {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out + "}"
}
