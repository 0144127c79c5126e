package assemble

import (
	"fmt"

	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/graph"
)

// DeBruijnFromString builds the de Bruijn graph of text: one edge per k-mer
// occurrence, from its (k-1)-prefix to its (k-1)-suffix, in text order
func DeBruijnFromString(text string, k int) (*graph.Graph, error) {
	if k < 2 {
		return nil, &dna.ParamError{Name: "k", Value: k, Reason: "must be at least 2"}
	}
	kmers, err := Composition(text, k)
	if err != nil {
		return nil, err
	}
	return fromKmers(kmers, k), nil
}

// DeBruijnFromKmers builds the de Bruijn graph of a k-mer collection. Repeats
// are kept as parallel edges. If k is 0 it is taken from the first k-mer
func DeBruijnFromKmers(kmers []string, k int) (*graph.Graph, error) {
	if len(kmers) == 0 {
		return nil, dna.ErrEmptyInput
	}
	if k == 0 {
		k = len(kmers[0])
	}
	if k < 2 {
		return nil, &dna.ParamError{Name: "k", Value: k, Reason: "must be at least 2"}
	}

	for i, kmer := range kmers {
		if len(kmer) != k {
			return nil, fmt.Errorf("k-mer %d (%s): %w", i, kmer, &dna.ParamError{Name: "length", Value: len(kmer), Reason: fmt.Sprintf("want %d", k)})
		}
		if err := dna.Validate(kmer); err != nil {
			return nil, fmt.Errorf("k-mer %d: %w", i, err)
		}
	}
	return fromKmers(kmers, k), nil
}

func fromKmers(kmers []string, k int) *graph.Graph {
	g := graph.New()
	for _, kmer := range kmers {
		g.AddEdge(kmer[:k-1], kmer[1:])
	}
	return g
}

// OverlapGraph links read a to read b whenever a's suffix after its first
// base equals b's prefix before its last base. Every read is a node, and a
// read can link to itself
func OverlapGraph(reads []string) (*graph.Graph, error) {
	if len(reads) == 0 {
		return nil, dna.ErrEmptyInput
	}

	n := len(reads[0])
	if n < 2 {
		return nil, &dna.ParamError{Name: "read length", Value: n, Reason: "must be at least 2"}
	}
	for i, r := range reads {
		if len(r) != n {
			return nil, fmt.Errorf("read %d (%s): %w", i, r, &dna.ParamError{Name: "read length", Value: len(r), Reason: fmt.Sprintf("want %d", n)})
		}
		if err := dna.Validate(r); err != nil {
			return nil, fmt.Errorf("read %d: %w", i, err)
		}
	}

	// index reads by prefix so each read only checks its candidates
	byPrefix := make(map[string][]string)
	for _, r := range reads {
		byPrefix[r[:n-1]] = append(byPrefix[r[:n-1]], r)
	}

	g := graph.New()
	for _, r := range reads {
		g.AddNode(r)
		for _, next := range byPrefix[r[1:]] {
			g.AddEdge(r, next)
		}
	}
	return g, nil
}
