// Package graph is a directed multigraph keyed by node label. It keeps the order
// nodes were first seen and the order of each node's edges, and parallel edges
// are kept as repeated entries in the edge list
package graph

// Graph is an adjacency list multigraph
type Graph struct {
	// nodes in the order they were first seen, as a source or a destination
	order []string

	// adj maps each node to its ordered list of destinations
	adj map[string][]string

	// edges is the total edge count
	edges int
}

// New returns an empty graph
func New() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// AddNode adds n, with no edges, if it isn't in the graph yet
func (g *Graph) AddNode(n string) {
	if _, ok := g.adj[n]; !ok {
		g.adj[n] = nil
		g.order = append(g.order, n)
	}
}

// AddEdge appends an edge from -> to, adding either node if needed
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	g.adj[from] = append(g.adj[from], to)
	g.edges++
}

// Has is whether n is a node of the graph
func (g *Graph) Has(n string) bool {
	_, ok := g.adj[n]
	return ok
}

// Nodes returns every node in first-seen order
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Edges returns a copy of n's destinations in insertion order
func (g *Graph) Edges(n string) []string {
	return append([]string(nil), g.adj[n]...)
}

// Len is the number of nodes
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount is the number of edges, counting parallel edges separately
func (g *Graph) EdgeCount() int {
	return g.edges
}

// OutDegree is the number of edges leaving n
func (g *Graph) OutDegree(n string) int {
	return len(g.adj[n])
}

// InDegrees maps every node to the number of edges entering it
func (g *Graph) InDegrees() map[string]int {
	in := make(map[string]int, len(g.order))
	for _, n := range g.order {
		in[n] += 0
		for _, to := range g.adj[n] {
			in[to]++
		}
	}
	return in
}

// Adjacency returns a copy of the adjacency list holding only the nodes with outgoing edges
func (g *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.adj))
	for n, tos := range g.adj {
		if len(tos) > 0 {
			out[n] = append([]string(nil), tos...)
		}
	}
	return out
}

// Clone is a deep copy of g
func (g *Graph) Clone() *Graph {
	c := &Graph{
		order: append([]string(nil), g.order...),
		adj:   make(map[string][]string, len(g.adj)),
		edges: g.edges,
	}
	for n, tos := range g.adj {
		c.adj[n] = append([]string(nil), tos...)
	}
	return c
}

// Equal is whether g and o have the same nodes and the same ordered edge list per node.
// Node discovery order is ignored
func (g *Graph) Equal(o *Graph) bool {
	if g.Len() != o.Len() || g.edges != o.edges {
		return false
	}
	for n, tos := range g.adj {
		otos, ok := o.adj[n]
		if !ok || len(tos) != len(otos) {
			return false
		}
		for i := range tos {
			if tos[i] != otos[i] {
				return false
			}
		}
	}
	return true
}
