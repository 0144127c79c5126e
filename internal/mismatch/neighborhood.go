// Package mismatch generates Hamming neighborhoods of k-mers and uses them to
// find the most frequent words in a text when mismatches are allowed
package mismatch

import (
	"sort"

	"github.com/ankitson/compbio/internal/dna"
)

// Neighborhood returns, sorted, every string of len(pattern) within at most
// maxDistance mismatches of pattern. pattern itself is always included.
//
// It's built breadth first over the levels of the Hamming ball: level i is
// every single-base substitution of level i-1 that hasn't been seen yet. Each
// member is generated from one parent per level, so the work is
// O(|ball| * k * 3) with no recursion on the pattern length
func Neighborhood(pattern string, maxDistance int) ([]string, error) {
	seen, err := ball(pattern, maxDistance)
	if err != nil {
		return nil, err
	}

	nbrs := make([]string, 0, len(seen))
	for n := range seen {
		nbrs = append(nbrs, n)
	}
	sort.Strings(nbrs)
	return nbrs, nil
}

// NeighborhoodWithReverseComplement is the union of the neighborhoods of
// pattern and of its reverse complement
func NeighborhoodWithReverseComplement(pattern string, maxDistance int) ([]string, error) {
	fwd, err := ball(pattern, maxDistance)
	if err != nil {
		return nil, err
	}

	rc, err := dna.ReverseComplement(pattern)
	if err != nil {
		return nil, err
	}
	rev, err := ball(rc, maxDistance)
	if err != nil {
		return nil, err
	}

	for n := range rev {
		fwd[n] = struct{}{}
	}

	nbrs := make([]string, 0, len(fwd))
	for n := range fwd {
		nbrs = append(nbrs, n)
	}
	sort.Strings(nbrs)
	return nbrs, nil
}

// Size is the number of strings within d mismatches of a k-mer: sum over i<=d of C(k,i)*3^i
func Size(k, d int) int {
	if d > k {
		d = k
	}
	total, choose, pow := 0, 1, 1
	for i := 0; i <= d; i++ {
		total += choose * pow
		choose = choose * (k - i) / (i + 1)
		pow *= 3
	}
	return total
}

// ball is the unsorted Hamming ball around pattern
func ball(pattern string, d int) (map[string]struct{}, error) {
	if err := dna.CheckDistance(d); err != nil {
		return nil, err
	}
	if err := dna.Validate(pattern); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, Size(len(pattern), d))
	seen[pattern] = struct{}{}

	frontier := []string{pattern}
	for level := 1; level <= d && len(frontier) > 0; level++ {
		var next []string
		for _, s := range frontier {
			buf := []byte(s)
			for i := range buf {
				orig := buf[i]
				for j := 0; j < len(dna.Bases); j++ {
					if dna.Bases[j] == orig {
						continue
					}
					buf[i] = dna.Bases[j]
					n := string(buf)
					if _, ok := seen[n]; !ok {
						seen[n] = struct{}{}
						next = append(next, n)
					}
				}
				buf[i] = orig
			}
		}
		frontier = next
	}
	return seen, nil
}
