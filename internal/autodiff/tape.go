package autodiff

// tape is the schedule of one backward pass: the nodes reachable from an
// output in post-order, so every node appears after all of its parents and
// the output is last. Walking it from the end is a reverse topological order.
type tape struct {
	nodes []*Value
}

// frame is one entry of the explicit DFS stack: a node and the index of the
// next parent edge to explore.
type frame struct {
	v    *Value
	next int
}

// newTape records the subgraph reachable from out.
//
// The traversal is an iterative depth-first search keyed on node identity,
// so shared subexpressions are recorded once no matter how many paths lead
// to them, and graph depth is not bounded by the goroutine stack.
func newTape(out *Value) *tape {
	t := &tape{nodes: make([]*Value, 0, 16)}
	visited := map[*Value]bool{out: true}
	stack := []frame{{v: out}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.v.parents) {
			parent := top.v.parents[top.next].parent
			top.next++
			if !visited[parent] {
				visited[parent] = true
				stack = append(stack, frame{v: parent})
			}
			continue
		}
		t.nodes = append(t.nodes, top.v)
		stack = stack[:len(stack)-1]
	}

	return t
}

// clear resets the gradient slot of every recorded node.
func (t *tape) clear() {
	for _, v := range t.nodes {
		v.clearGrad()
	}
}

// backward clears all recorded gradients, seeds the output with 1 and walks
// the tape backwards, pushing each node's gradient into its parents through
// the recorded local rules. Contributions from different paths are summed.
func (t *tape) backward() {
	if len(t.nodes) == 0 {
		return
	}

	t.clear()

	out := t.nodes[len(t.nodes)-1]
	out.accumulate(1.0)

	for i := len(t.nodes) - 1; i >= 0; i-- {
		v := t.nodes[i]
		if !v.hasGrad {
			continue
		}
		for _, e := range v.parents {
			e.parent.accumulate(e.local(v.grad))
		}
	}
}

// reversed returns the nodes output first.
func (t *tape) reversed() []*Value {
	order := make([]*Value, len(t.nodes))
	for i, v := range t.nodes {
		order[len(t.nodes)-1-i] = v
	}
	return order
}
