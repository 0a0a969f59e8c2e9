package boolnet

import (
	"fmt"
)

// Bias returns node i's bias: the fraction of its 2^k input conditions
// that turn it on. Returns ErrNodeNotFound for an out-of-range index.
// Complexity: O(1)
func (n *LogicNetwork) Bias(i int) (float64, error) {
	if i < 0 || i >= len(n.rows) {
		return 0, fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}
	r := n.rows[i]

	return float64(len(r.On)) / float64(uint64(1)<<uint(len(r.Inputs))), nil
}

// MeanBias returns the arithmetic mean of all node biases.
// Complexity: O(n)
func (n *LogicNetwork) MeanBias() float64 {
	var sum float64
	for i := range n.rows {
		b, _ := n.Bias(i)
		sum += b
	}

	return sum / float64(len(n.rows))
}

// DependsOn reports whether node logically depends on the named input:
// whether some pair of conditions differing only in that input's bit
// disagrees on on-set membership. An input the node does not declare
// contributes nothing, so the answer for it is false. Returns
// ErrNodeNotFound for an unknown node name.
// Complexity: O(|On|·k)
func (n *LogicNetwork) DependsOn(node, input string) (bool, error) {
	i, ok := n.index[node]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNodeNotFound, node)
	}
	r := n.rows[i]

	j := -1
	for pos, in := range r.Inputs {
		if in == input {
			j = pos
			break
		}
	}
	if j < 0 {
		return false, nil
	}

	// Membership is insensitive to bit j exactly when the on-set is
	// closed under flipping it: every flip of an on-condition must land
	// on another on-condition, otherwise the pair witnesses dependency.
	onSet := make(map[string]struct{}, len(r.On))
	for _, cond := range r.On {
		onSet[cond] = struct{}{}
	}
	for _, cond := range r.On {
		if _, on := onSet[flipBit(cond, j)]; !on {
			return true, nil
		}
	}

	return false, nil
}

// IsCanalizing reports whether node i has a canalizing input: an input
// position j and value v such that every condition with bit j equal to
// v maps to the same output. Input-less nodes are never canalizing.
// Returns ErrNodeNotFound for an out-of-range index.
// Complexity: O(k·2^k)
func (n *LogicNetwork) IsCanalizing(i int) (bool, error) {
	if i < 0 || i >= len(n.rows) {
		return false, fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}
	r := n.rows[i]

	return IsCanalizingFunction(len(r.Inputs), r.On), nil
}

// IsCanalizingFunction reports whether the boolean function of arity k
// with the given on-set has a canalizing input. The on-set holds the
// k-bit conditions mapping to true; k == 0 is never canalizing. The
// conditions are trusted to be well-formed fixed-width bitstrings.
// Complexity: O(k·2^k)
func IsCanalizingFunction(k int, on []string) bool {
	if k == 0 {
		return false
	}

	onSet := make(map[string]struct{}, len(on))
	for _, cond := range on {
		onSet[cond] = struct{}{}
	}
	volume := 1 << uint(k)

	for j := 0; j < k; j++ {
		for _, v := range []byte{'0', '1'} {
			agree := true
			fixed := false
			var out bool
			for idx := 0; idx < volume; idx++ {
				cond := Pattern(idx, k)
				if cond[j] != v {
					continue
				}
				_, isOn := onSet[cond]
				if !fixed {
					out = isOn
					fixed = true
					continue
				}
				if isOn != out {
					agree = false
					break
				}
			}
			if agree {
				return true
			}
		}
	}

	return false
}

// CanalizingCount returns the number of canalizing nodes.
// Complexity: O(Σ k_i·2^k_i)
func (n *LogicNetwork) CanalizingCount() int {
	count := 0
	for i := range n.rows {
		if canal, _ := n.IsCanalizing(i); canal {
			count++
		}
	}

	return count
}

// flipBit returns cond with character j toggled between '0' and '1'.
func flipBit(cond string, j int) string {
	b := []byte(cond)
	if b[j] == '0' {
		b[j] = '1'
	} else {
		b[j] = '0'
	}

	return string(b)
}
