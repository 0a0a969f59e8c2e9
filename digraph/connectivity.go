package digraph

// WeaklyConnected reports whether every node is reachable from every
// other when edge direction is ignored. The empty graph is vacuously
// connected here; callers for whom zero nodes is undefined must test
// NodeCount first.
// Complexity: O(n + m)
func (g *Graph) WeaklyConnected() bool {
	if len(g.succ) <= 1 {
		return true
	}

	// Pick an arbitrary root and flood both adjacency directions.
	var root string
	for id := range g.succ {
		root = id
		break
	}

	visited := make(map[string]bool, len(g.succ))
	visited[root] = true
	queue := []string{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range g.succ[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
		for next := range g.pred[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(g.succ)
}
