// Package traverse finds Eulerian cycles and paths through a graph.Graph.
// Traversals work on their own copy of the adjacency list, so the caller's
// graph is never consumed
package traverse

import (
	"errors"
	"fmt"

	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/graph"
)

var (
	// ErrNoEulerianPath is returned when the degree imbalance doesn't single out
	// one start node and one end node
	ErrNoEulerianPath = errors.New("no Eulerian path")

	// ErrNoEulerianCycle is returned for a cycle request on a graph where some
	// node's in-degree differs from its out-degree. It matches ErrNoEulerianPath
	ErrNoEulerianCycle = fmt.Errorf("%w: graph is unbalanced, no Eulerian cycle", ErrNoEulerianPath)

	// ErrDisconnectedGraph is returned when some edges can't be reached from the start node
	ErrDisconnectedGraph = errors.New("disconnected graph")
)

// EulerianCycle returns a closed walk through every edge of g exactly once,
// starting and ending at start. If start is empty the walk begins at the first
// node with an outgoing edge
func EulerianCycle(g *graph.Graph, start string) ([]string, error) {
	if g.EdgeCount() == 0 {
		return nil, dna.ErrEmptyInput
	}

	in := g.InDegrees()
	for _, n := range g.Nodes() {
		if in[n] != g.OutDegree(n) {
			return nil, fmt.Errorf("node %s has in-degree %d and out-degree %d: %w", n, in[n], g.OutDegree(n), ErrNoEulerianCycle)
		}
	}

	if start == "" {
		start = firstSource(g)
	} else if !g.Has(start) {
		return nil, fmt.Errorf("start node %s is not in the graph: %w", start, dna.ErrInvalidParameter)
	}

	return walk(g, start)
}

// EulerianPath returns a walk through every edge of g exactly once. The start
// is the one node with out-degree one above its in-degree and the end is the
// one node with in-degree one above its out-degree. A balanced graph yields a cycle
func EulerianPath(g *graph.Graph) ([]string, error) {
	if g.EdgeCount() == 0 {
		return nil, dna.ErrEmptyInput
	}

	var starts, ends []string
	in := g.InDegrees()
	for _, n := range g.Nodes() {
		switch diff := g.OutDegree(n) - in[n]; {
		case diff == 1:
			starts = append(starts, n)
		case diff == -1:
			ends = append(ends, n)
		case diff != 0:
			return nil, fmt.Errorf("node %s has in-degree %d and out-degree %d: %w", n, in[n], g.OutDegree(n), ErrNoEulerianPath)
		}
	}

	switch {
	case len(starts) == 0 && len(ends) == 0:
		return walk(g, firstSource(g))
	case len(starts) != 1 || len(ends) != 1:
		return nil, fmt.Errorf("%d start and %d end candidates: %w", len(starts), len(ends), ErrNoEulerianPath)
	}
	start, end := starts[0], ends[0]

	// close the path into a cycle, walk it, then open it back up at the added edge
	closed := g.Clone()
	closed.AddEdge(end, start)
	cycle, err := walk(closed, start)
	if err != nil {
		return nil, err
	}

	last := len(cycle) - 1
	for i := 0; i < last; i++ {
		if cycle[i] == end && cycle[i+1] == start {
			path := make([]string, 0, last)
			path = append(path, cycle[i+1:]...)
			return append(path, cycle[1:i+1]...), nil
		}
	}

	// walk always uses the added edge
	return nil, ErrNoEulerianPath
}

// walk is an iterative Hierholzer traversal from start over a balanced graph.
// Each node's edges are used in insertion order. Nodes are pushed as edges are
// consumed and moved to the circuit once they run out, which splices every
// sub-cycle into place without recursion
func walk(g *graph.Graph, start string) ([]string, error) {
	adj := g.Adjacency()
	next := make(map[string]int, len(adj))

	circuit := make([]string, 0, g.EdgeCount()+1)
	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		if i := next[v]; i < len(adj[v]) {
			next[v]++
			stack = append(stack, adj[v][i])
			continue
		}
		stack = stack[:len(stack)-1]
		circuit = append(circuit, v)
	}

	if len(circuit) != g.EdgeCount()+1 {
		return nil, fmt.Errorf("reached %d of %d edges from %s: %w", len(circuit)-1, g.EdgeCount(), start, ErrDisconnectedGraph)
	}

	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}
	return circuit, nil
}

func firstSource(g *graph.Graph) string {
	for _, n := range g.Nodes() {
		if g.OutDegree(n) > 0 {
			return n
		}
	}
	return ""
}

// RotationEqual is whether b is a rotation of a, e.g. the same cycle read from another node
func RotationEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	for start := range b {
		if b[start] != a[0] {
			continue
		}
		match := true
		for i := range a {
			if a[i] != b[(start+i)%len(b)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
