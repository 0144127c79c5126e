package assemble

import (
	"fmt"

	"github.com/ankitson/compbio/internal/graph"
	"github.com/ankitson/compbio/internal/traverse"
)

// Reconstruct spells the sequence of an Eulerian path through g
func Reconstruct(g *graph.Graph) (string, error) {
	path, err := traverse.EulerianPath(g)
	if err != nil {
		return "", fmt.Errorf("failed to reconstruct sequence: %w", err)
	}
	return PathToString(path)
}

// StringFromKmers solves the string reconstruction problem: it returns a
// string whose k-mer composition is exactly kmers
func StringFromKmers(kmers []string) (string, error) {
	g, err := DeBruijnFromKmers(kmers, 0)
	if err != nil {
		return "", err
	}
	return Reconstruct(g)
}
