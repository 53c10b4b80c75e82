package rules

// Vertex-coloring states for cycle-detecting DFS (the white/gray/black
// discipline).
const (
	white = iota
	gray
	black
)

// topologicalOrder returns rs reordered so that, within one substance's
// rule list, any rule producing an effect another rule requires via
// IfPresent comes first. This lets Apply replay every rule exactly once
// per call and still resolve multi-step cascades correctly.
//
// If the dependencies form a cycle (for example, two rules each require
// an effect the other can produce), no such order exists and
// topologicalOrder returns ErrCycle.
func topologicalOrder(rs []Rule) ([]Rule, error) {
	n := len(rs)
	// adj[i] holds the rules i depends on: every j that can produce an
	// effect i's IfPresent guard requires. i must fire after everything
	// in adj[i].
	adj := make([][]int, n)
	for i, dependent := range rs {
		for j, candidate := range rs {
			if i == j {
				continue
			}
			for _, e := range dependent.IfPresent.Effects() {
				if candidate.produces(e) {
					adj[i] = append(adj[i], j)
					break
				}
			}
		}
	}

	state := make([]int, n)
	order := make([]int, 0, n)

	var visit func(v int) error
	visit = func(v int) error {
		if state[v] == gray {
			return ErrCycle
		}
		if state[v] == black {
			return nil
		}
		state[v] = gray
		for _, w := range adj[v] {
			if err := visit(w); err != nil {
				return err
			}
		}
		state[v] = black
		order = append(order, v)
		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	// order is already producer-first: visit(dependent) recurses into
	// every producer it depends on before appending dependent itself, so
	// a producer's order index always precedes its consumer's.
	out := make([]Rule, n)
	for i, v := range order {
		out[i] = rs[v]
	}
	return out, nil
}
