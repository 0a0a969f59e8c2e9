package randomizer

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/nullnet/boolnet"
)

// NodeContext describes the node a logic function is being generated
// for: its reference name, its position in the reference node order,
// and its in-degree in the freshly drawn topology.
type NodeContext struct {
	Name string
	Pos  int
	K    int
}

// FunctionGenerator produces the on-set of one node's update rule.
// Implementations draw from rng only; they hold no per-draw state.
type FunctionGenerator interface {
	// Generate returns the sorted on-set conditions for the node
	// described by ctx, each a fixed-width ctx.K bitstring.
	Generate(ctx NodeContext, rng *rand.Rand) ([]string, error)
}

// RandomOnSet draws a random on-set of arity k with target bias p.
//
// The realized on-set size is chosen by stochastic rounding so that
// its expectation equals p·2^k exactly even when that product is not
// an integer: the integer part is always taken, and one extra pattern
// is added with probability equal to the fractional part (a single
// Bernoulli draw). The chosen count of distinct indices is then drawn
// without replacement from [0, 2^k) and rendered as fixed-width-k
// bitstrings, sorted ascending. Arity 0 always yields an empty set.
//
// Returns ErrNeedRand for a nil source, ErrArity for k outside
// [0, MaxArity], and ErrBias for p outside [0, 1].
// Complexity: O(2^k) worst case, O(count) expected for sparse sets.
func RandomOnSet(k int, p float64, rng *rand.Rand) ([]string, error) {
	switch {
	case rng == nil:
		return nil, fmt.Errorf("%w: nil source", ErrNeedRand)
	case k < 0 || k > MaxArity:
		return nil, fmt.Errorf("%w: k=%d outside [0, %d]", ErrArity, k, MaxArity)
	case p < 0 || p > 1:
		return nil, fmt.Errorf("%w: p=%v outside [0, 1]", ErrBias, p)
	}
	if k == 0 {
		return nil, nil
	}

	volume := 1 << uint(k)
	whole, frac := math.Modf(p * float64(volume))
	count := int(whole)
	if rng.Float64() < frac {
		count++
	}

	// Drawing the smaller of set and complement keeps the expected
	// number of collisions bounded even at bias close to one.
	flip := count > volume/2
	target := count
	if flip {
		target = volume - count
	}
	chosen := make(map[int]struct{}, target)
	for len(chosen) < target {
		chosen[rng.Intn(volume)] = struct{}{}
	}

	on := make([]string, 0, count)
	if flip {
		for idx := 0; idx < volume; idx++ {
			if _, skip := chosen[idx]; skip {
				continue
			}
			on = append(on, boolnet.Pattern(idx, k))
		}

		return on, nil
	}
	for idx := range chosen {
		on = append(on, boolnet.Pattern(idx, k))
	}
	sort.Strings(on)

	return on, nil
}

// uniformGen applies one fixed target bias to every node. It backs
// both the uniform-bias and mean-bias strategies; the two differ only
// in where the bias value comes from.
type uniformGen struct {
	p float64
}

func (g uniformGen) Generate(ctx NodeContext, rng *rand.Rand) ([]string, error) {
	return RandomOnSet(ctx.K, g.p, rng)
}

// localGen applies each node's own reference bias, keyed by node name
// so the correspondence survives any node-set-preserving topology.
type localGen struct {
	p map[string]float64
}

func (g localGen) Generate(ctx NodeContext, rng *rand.Rand) ([]string, error) {
	p, ok := g.p[ctx.Name]
	if !ok {
		return nil, fmt.Errorf("%w: no stored bias for node %q", ErrReference, ctx.Name)
	}

	return RandomOnSet(ctx.K, p, rng)
}

// canalizingGen decorates another generator, redrawing each node's
// function until its canalizing status matches the reference status
// recorded for that node. The inner loop is unbounded; the outer
// rejection budget still applies to whole-network draws.
type canalizingGen struct {
	inner FunctionGenerator
	want  map[string]bool
}

func (g canalizingGen) Generate(ctx NodeContext, rng *rand.Rand) ([]string, error) {
	want, ok := g.want[ctx.Name]
	if !ok {
		return nil, fmt.Errorf("%w: no canalizing status for node %q", ErrReference, ctx.Name)
	}
	for {
		on, err := g.inner.Generate(ctx, rng)
		if err != nil {
			return nil, err
		}
		if boolnet.IsCanalizingFunction(ctx.K, on) == want {
			return on, nil
		}
	}
}
