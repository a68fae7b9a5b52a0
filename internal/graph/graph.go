// Package graph provides introspection of autodiff computation graphs:
// summary statistics and Graphviz DOT export.
//
// Only the subgraph reachable from an output through parent edges is
// visible. Operands that do not require grad are not recorded as parents,
// so they do not appear.
package graph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/born-ml/backprop/internal/autodiff"
)

// Stats summarizes the subgraph reachable from an output.
type Stats struct {
	Nodes  int // Distinct values
	Leaves int // Values with no recorded parents
	Edges  int // Parent edges, counting repeated operands separately
	Depth  int // Longest edge path from the output to a leaf
}

// Summarize computes Stats for the graph reachable from out.
func Summarize(out *autodiff.Value) Stats {
	order := autodiff.TopoOrder(out)
	if len(order) == 0 {
		return Stats{}
	}

	stats := Stats{Nodes: len(order)}
	depth := make(map[*autodiff.Value]int, len(order))

	// order lists every node before its parents, so depth[v] is final when v is reached.
	for _, v := range order {
		parents := v.Parents()
		if len(parents) == 0 {
			stats.Leaves++
		}
		stats.Edges += len(parents)
		stats.Depth = max(stats.Depth, depth[v])
		for _, p := range parents {
			depth[p] = max(depth[p], depth[v]+1)
		}
	}

	return stats
}

// WriteDOT writes the graph reachable from out in Graphviz DOT format.
//
// Each value is a record node showing its operation, data and gradient
// ("-" when no gradient is available). Edges point from parent to child.
func WriteDOT(w io.Writer, out *autodiff.Value) error {
	if out == nil {
		return autodiff.ErrNilOutput
	}

	bw := bufio.NewWriter(w)
	order := autodiff.TopoOrder(out)

	fmt.Fprintln(bw, "digraph autodiff {")
	fmt.Fprintln(bw, "  rankdir=LR;")
	fmt.Fprintln(bw, "  node [shape=record];")

	// Emit leaves first so the layout reads input to output.
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		fmt.Fprintf(bw, "  %q [label=\"{ %s | data %s | grad %s }\"];\n",
			v.ID().String(), label(v), formatFloat(v.Data()), gradText(v))
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		for _, p := range v.Parents() {
			fmt.Fprintf(bw, "  %q -> %q;\n", p.ID().String(), v.ID().String())
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func label(v *autodiff.Value) string {
	switch {
	case !v.IsLeaf():
		return v.Op()
	case v.RequiresGrad():
		return "param"
	default:
		return "const"
	}
}

func gradText(v *autodiff.Value) string {
	g, err := v.Grad()
	if err != nil {
		return "-"
	}
	return formatFloat(g)
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.4g", f)
}
