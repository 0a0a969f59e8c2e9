package boolnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nullnet/boolnet"
)

func mustLogic(t *testing.T, rows []boolnet.Row) *boolnet.LogicNetwork {
	t.Helper()
	net, err := boolnet.NewLogicNetwork(rows)
	require.NoError(t, err)

	return net
}

func TestBias(t *testing.T) {
	net := mustLogic(t, []boolnet.Row{
		{Node: "A", Inputs: []string{"A", "B"}, On: []string{"01", "10", "11"}},
		{Node: "B", Inputs: []string{"A"}, On: []string{"1"}},
	})

	a, err := net.Bias(0)
	require.NoError(t, err)
	b, err := net.Bias(1)
	require.NoError(t, err)
	assert.Equal(t, 0.75, a)
	assert.Equal(t, 0.5, b)
	assert.InDelta(t, 0.625, net.MeanBias(), 1e-12)
}

func TestDependsOn_Toggle(t *testing.T) {
	// B's membership flips with A's bit: dependency.
	net := mustLogic(t, []boolnet.Row{
		{Node: "A", Inputs: nil, On: nil},
		{Node: "B", Inputs: []string{"A"}, On: []string{"0"}},
	})

	dep, err := net.DependsOn("B", "A")
	require.NoError(t, err)
	assert.True(t, dep)
}

func TestDependsOn_Insensitive(t *testing.T) {
	// B is on for both values of A: no dependency despite the wiring.
	net := mustLogic(t, []boolnet.Row{
		{Node: "A", Inputs: nil, On: nil},
		{Node: "B", Inputs: []string{"A"}, On: []string{"0", "1"}},
	})

	dep, err := net.DependsOn("B", "A")
	require.NoError(t, err)
	assert.False(t, dep)
}

func TestDependsOn_PartialSensitivity(t *testing.T) {
	// A = x OR y: sensitive to both; A = x ignoring y: sensitive to x only.
	net := mustLogic(t, []boolnet.Row{
		{Node: "x", Inputs: nil, On: nil},
		{Node: "y", Inputs: nil, On: nil},
		{Node: "or", Inputs: []string{"x", "y"}, On: []string{"01", "10", "11"}},
		{Node: "proj", Inputs: []string{"x", "y"}, On: []string{"10", "11"}},
	})

	for _, in := range []string{"x", "y"} {
		dep, err := net.DependsOn("or", in)
		require.NoError(t, err)
		assert.True(t, dep, "OR depends on %s", in)
	}

	depX, err := net.DependsOn("proj", "x")
	require.NoError(t, err)
	depY, err := net.DependsOn("proj", "y")
	require.NoError(t, err)
	assert.True(t, depX)
	assert.False(t, depY, "projection ignores its second input")
}

func TestDependsOn_UnknownNames(t *testing.T) {
	net := mustLogic(t, []boolnet.Row{
		{Node: "A", Inputs: nil, On: nil},
		{Node: "B", Inputs: []string{"A"}, On: []string{"1"}},
	})

	_, err := net.DependsOn("Z", "A")
	assert.ErrorIs(t, err, boolnet.ErrNodeNotFound)

	// A name that is not among the node's inputs cannot influence it.
	dep, err := net.DependsOn("B", "B")
	require.NoError(t, err)
	assert.False(t, dep)
}

func TestIsCanalizing(t *testing.T) {
	net := mustLogic(t, []boolnet.Row{
		{Node: "x", Inputs: nil, On: nil},
		{Node: "y", Inputs: nil, On: nil},
		// AND: x=0 forces off.
		{Node: "and", Inputs: []string{"x", "y"}, On: []string{"11"}},
		// XOR: no single input ever decides the output.
		{Node: "xor", Inputs: []string{"x", "y"}, On: []string{"01", "10"}},
	})

	and, err := net.IsCanalizing(2)
	require.NoError(t, err)
	xor, err := net.IsCanalizing(3)
	require.NoError(t, err)
	assert.True(t, and)
	assert.False(t, xor)

	// Input-less nodes have no input to canalize on.
	constant, err := net.IsCanalizing(0)
	require.NoError(t, err)
	assert.False(t, constant)

	_, err = net.IsCanalizing(99)
	assert.ErrorIs(t, err, boolnet.ErrNodeNotFound)
}

func TestCanalizingCount(t *testing.T) {
	net := mustLogic(t, []boolnet.Row{
		{Node: "x", Inputs: nil, On: nil},
		{Node: "and", Inputs: []string{"x", "xor"}, On: []string{"11"}},
		{Node: "xor", Inputs: []string{"x", "and"}, On: []string{"01", "10"}},
	})
	assert.Equal(t, 1, net.CanalizingCount(), "only the AND node canalizes")
}

func Test3InputCanalizing(t *testing.T) {
	// maj = majority(x,y,z): not canalizing. gate = x AND (y XOR z): x=0 forces off.
	net := mustLogic(t, []boolnet.Row{
		{Node: "x", Inputs: nil, On: nil},
		{Node: "y", Inputs: nil, On: nil},
		{Node: "z", Inputs: nil, On: nil},
		{Node: "maj", Inputs: []string{"x", "y", "z"}, On: []string{"011", "101", "110", "111"}},
		{Node: "gate", Inputs: []string{"x", "y", "z"}, On: []string{"101", "110"}},
	})

	maj, err := net.IsCanalizing(3)
	require.NoError(t, err)
	gate, err := net.IsCanalizing(4)
	require.NoError(t, err)
	assert.False(t, maj)
	assert.True(t, gate)
}
