package digraph

import "sort"

// degreePair is the (in, out) degree signature of one node.
type degreePair struct {
	in  int
	out int
}

// Isomorphic reports whether g and h are structurally identical up to a
// renaming of node IDs. It screens by node count, edge count and degree
// signature before falling back to backtracking assignment, so the
// exponential path is only reached by graphs that already agree on
// every cheap invariant.
//
// Intended for validation and tests on regulatory-network sizes; not a
// general-purpose isomorphism solver.
func (g *Graph) Isomorphic(h *Graph) bool {
	if h == nil {
		return false
	}
	if len(g.succ) != len(h.succ) || g.edges != h.edges {
		return false
	}
	if len(g.succ) == 0 {
		return true
	}

	gDeg := degreeIndex(g)
	hDeg := degreeIndex(h)
	if !sameSignature(gDeg, hDeg) {
		return false
	}

	// Candidates for each g-node are the h-nodes sharing its signature.
	byPair := make(map[degreePair][]string)
	for id, d := range hDeg {
		byPair[d] = append(byPair[d], id)
	}
	for _, ids := range byPair {
		sort.Strings(ids)
	}

	// Most-constrained-first ordering shrinks the branching factor.
	order := make([]string, 0, len(g.succ))
	for id := range g.succ {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		di := gDeg[order[i]]
		dj := gDeg[order[j]]
		if di.in+di.out != dj.in+dj.out {
			return di.in+di.out > dj.in+dj.out
		}

		return order[i] < order[j]
	})

	mapping := make(map[string]string, len(order))
	used := make(map[string]bool, len(order))

	var assign func(i int) bool
	assign = func(i int) bool {
		if i == len(order) {
			return true
		}
		u := order[i]
		for _, v := range byPair[gDeg[u]] {
			if used[v] || !consistent(g, h, mapping, u, v) {
				continue
			}
			mapping[u] = v
			used[v] = true
			if assign(i + 1) {
				return true
			}
			delete(mapping, u)
			used[v] = false
		}

		return false
	}

	return assign(0)
}

// consistent checks that mapping u→v preserves every edge between u
// and the already-mapped nodes, self-loops included.
func consistent(g, h *Graph, mapping map[string]string, u, v string) bool {
	if g.HasEdge(u, u) != h.HasEdge(v, v) {
		return false
	}
	for gu, hv := range mapping {
		if g.HasEdge(u, gu) != h.HasEdge(v, hv) {
			return false
		}
		if g.HasEdge(gu, u) != h.HasEdge(hv, v) {
			return false
		}
	}

	return true
}

// degreeIndex computes the signature of every node.
func degreeIndex(g *Graph) map[string]degreePair {
	idx := make(map[string]degreePair, len(g.succ))
	for id := range g.succ {
		idx[id] = degreePair{in: len(g.pred[id]), out: len(g.succ[id])}
	}

	return idx
}

// sameSignature compares the degree-pair multisets of two graphs.
func sameSignature(a, b map[string]degreePair) bool {
	flatten := func(m map[string]degreePair) []degreePair {
		out := make([]degreePair, 0, len(m))
		for _, d := range m {
			out = append(out, d)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].in != out[j].in {
				return out[i].in < out[j].in
			}

			return out[i].out < out[j].out
		})

		return out
	}
	fa, fb := flatten(a), flatten(b)
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}

	return true
}
