// Package: nullnet/randomizer
//
// errors.go — sentinel errors for the randomizer package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • The rejection loop is the only retry mechanism; every other error
//     is fail-fast and aborts the draw that observed it.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • ErrExhausted is the ONLY error the engine emits from a spent budget;
//     check it before assuming a constraint is broken.
//   • Constraint evaluation errors (constraint.ErrUndefined,
//     boolnet.ErrNoLogicTable) pass through unwrapped; do not convert them
//     into ErrExhausted.
//   • Check with errors.Is in tests and production code; avoid string
//     comparisons.

package randomizer

import "errors"

// ErrOption indicates a WithX(...) option received a meaningless value
// (nil *rand.Rand, nil topology instance, nil factory). Recorded inside
// the option and surfaced by the constructor that resolves it.
// Usage: if errors.Is(err, ErrOption) { /* correct option values */ }.
var ErrOption = errors.New("randomizer: invalid option value")

// ErrNeedRand indicates a generation routine requires a non-nil
// *rand.Rand. Constructors resolve a source themselves; this surfaces
// only from direct calls such as RandomOnSet(nil, ...).
// Usage: if errors.Is(err, ErrNeedRand) { /* supply seeded RNG */ }.
var ErrNeedRand = errors.New("randomizer: rng is required")

// ErrArity indicates a function-generation arity outside the supported
// range (negative, or wider than MaxArity input conditions allow).
// Usage: if errors.Is(err, ErrArity) { /* check in-degree */ }.
var ErrArity = errors.New("randomizer: arity out of range")

// ErrBias indicates a target bias outside the closed interval [0,1].
// Usage: if errors.Is(err, ErrBias) { /* clamp or reject p */ }.
var ErrBias = errors.New("randomizer: bias out of range")

// ErrReference indicates a missing or unusable reference object: a nil
// reference graph or network at construction or via a setter, or a
// reference that lost correspondence with the drawn topology.
// Usage: if errors.Is(err, ErrReference) { /* fix the reference */ }.
var ErrReference = errors.New("randomizer: invalid reference")

// ErrConstraintKind indicates a constraint of the wrong family for the
// component it was assigned to, or a nil constraint value.
// Usage: if errors.Is(err, ErrConstraintKind) { /* route correctly */ }.
var ErrConstraintKind = errors.New("randomizer: wrong constraint family")

// ErrExhausted indicates the rejection loop spent its entire retry
// budget without drawing a candidate that satisfies every constraint.
// Usage: if errors.Is(err, ErrExhausted) { /* loosen constraints or raise budget */ }.
var ErrExhausted = errors.New("randomizer: no satisfying sample within budget")

// ErrUnsatisfiable indicates a constraint was assigned to a fixed
// topology whose output can never satisfy it; reported eagerly by the
// setter, never from Random.
// Usage: if errors.Is(err, ErrUnsatisfiable) { /* drop the constraint */ }.
var ErrUnsatisfiable = errors.New("randomizer: constraint unsatisfiable for fixed topology")

// ErrIncompatibleTopology indicates a bias strategy that relies on
// node-to-reference correspondence was combined with a topology
// strategy that destroys it.
// Usage: if errors.Is(err, ErrIncompatibleTopology) { /* use FixedTopology or InDegree */ }.
var ErrIncompatibleTopology = errors.New("randomizer: topology strategy breaks node correspondence")
