package graph

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// DOT renders g in the Graphviz DOT language as a non-strict digraph
// so that parallel edges survive
func DOT(g *Graph, name string) (string, error) {
	if name == "" {
		name = "G"
	}

	viz := gographviz.NewGraph()
	if err := viz.SetName(name); err != nil {
		return "", err
	}
	if err := viz.SetDir(true); err != nil {
		return "", err
	}
	if err := viz.SetStrict(false); err != nil {
		return "", err
	}

	for _, n := range g.order {
		if err := viz.AddNode(name, n, nil); err != nil {
			return "", fmt.Errorf("failed to add node %s: %w", n, err)
		}
	}
	for _, n := range g.order {
		for _, to := range g.adj[n] {
			if err := viz.AddEdge(n, to, true, nil); err != nil {
				return "", fmt.Errorf("failed to add edge %s -> %s: %w", n, to, err)
			}
		}
	}

	return viz.String(), nil
}
