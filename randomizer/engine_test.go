package randomizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/constraint"
	"github.com/katalvlaran/nullnet/digraph"
	"github.com/katalvlaran/nullnet/randomizer"
)

// ring builds the 3-cycle A→B→C→A.
func ring() *digraph.Graph {
	g := digraph.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	return g
}

func TestRandomBudgetSpentExactly(t *testing.T) {
	const budget = 10

	calls := 0
	reject := constraint.TopologicalFunc(func(*digraph.Graph) bool {
		calls++

		return false
	})

	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithTimeout(budget), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, rand.SetConstraints(reject))

	_, err = rand.Random()
	assert.ErrorIs(t, err, randomizer.ErrExhausted)
	assert.Equal(t, budget, calls, "one constraint evaluation per attempt")
}

func TestRandomBudgetResetsPerCall(t *testing.T) {
	calls := 0
	reject := constraint.TopologicalFunc(func(*digraph.Graph) bool {
		calls++

		return false
	})

	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithTimeout(4), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, rand.SetConstraints(reject))

	_, err = rand.Random()
	require.ErrorIs(t, err, randomizer.ErrExhausted)
	_, err = rand.Random()
	require.ErrorIs(t, err, randomizer.ErrExhausted)
	assert.Equal(t, 8, calls)
}

func TestRandomUnboundedRetries(t *testing.T) {
	const settle = 1500

	calls := 0
	eventually := constraint.TopologicalFunc(func(*digraph.Graph) bool {
		calls++

		return calls >= settle
	})

	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithTimeout(0), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, rand.SetConstraints(eventually))

	g, err := rand.Random()
	require.NoError(t, err)
	assert.NotNil(t, g)
	assert.Equal(t, settle, calls, "accepted on the first passing attempt")
}

func TestRandomNegativeTimeoutUnbounded(t *testing.T) {
	calls := 0
	eventually := constraint.TopologicalFunc(func(*digraph.Graph) bool {
		calls++

		return calls >= 50
	})

	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithTimeout(-1), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, rand.SetConstraints(eventually))

	_, err = rand.Random()
	require.NoError(t, err)
	assert.Equal(t, 50, calls)
}

func TestRandomEvaluationErrorAborts(t *testing.T) {
	// Connected is undefined on the null graph, so the very first
	// check fails with an evaluation error instead of burning retries.
	rand, err := randomizer.NewMeanDegree(digraph.New(), randomizer.WithTimeout(1000))
	require.NoError(t, err)
	require.NoError(t, rand.SetConstraints(constraint.Connected{}))

	_, err = rand.Random()
	assert.ErrorIs(t, err, constraint.ErrUndefined)
	assert.NotErrorIs(t, err, randomizer.ErrExhausted)
}

func TestGraphsStreamIsUnbounded(t *testing.T) {
	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithSeed(7))
	require.NoError(t, err)

	const want = 25
	seen := 0
	for g, err := range rand.Graphs() {
		require.NoError(t, err)
		require.NotNil(t, g)
		seen++
		if seen == want {
			break
		}
	}
	assert.Equal(t, want, seen)
}

func TestGraphsStreamRestarts(t *testing.T) {
	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithSeed(7))
	require.NoError(t, err)

	for range rand.Graphs() {
		break
	}

	// A fresh iterator draws again; nothing is buffered or shared.
	count := 0
	for _, err := range rand.Graphs() {
		require.NoError(t, err)
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestGraphsStreamStopsAfterError(t *testing.T) {
	reject := constraint.TopologicalFunc(func(*digraph.Graph) bool { return false })

	rand, err := randomizer.NewMeanDegree(ring(), randomizer.WithTimeout(3), randomizer.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, rand.SetConstraints(reject))

	yields := 0
	for _, err := range rand.Graphs() {
		yields++
		assert.ErrorIs(t, err, randomizer.ErrExhausted)
	}
	assert.Equal(t, 1, yields, "the error is yielded once, then the pass ends")
}
