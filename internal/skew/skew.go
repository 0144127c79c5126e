// Package skew computes the running G - C skew of a genome, whose minimum
// points near the replication origin
package skew

import (
	"iter"

	"github.com/ankitson/compbio/internal/dna"
)

// step is the change in skew contributed by each base
var step = [256]int{'G': 1, 'C': -1}

// Series yields the skew after each base of genome, #G - #C over the prefix
// ending there. The sequence is lazy and can be ranged over more than once
func Series(genome string) (iter.Seq[int], error) {
	if err := dna.Validate(genome); err != nil {
		return nil, err
	}

	return func(yield func(int) bool) {
		skew := 0
		for i := 0; i < len(genome); i++ {
			skew += step[genome[i]]
			if !yield(skew) {
				return
			}
		}
	}, nil
}

// Values collects Series into a slice. With includeZero the empty prefix's
// skew of 0 comes first, giving len(genome)+1 values
func Values(genome string, includeZero bool) ([]int, error) {
	series, err := Series(genome)
	if err != nil {
		return nil, err
	}

	values := make([]int, 0, len(genome)+1)
	if includeZero {
		values = append(values, 0)
	}
	for v := range series {
		values = append(values, v)
	}
	return values, nil
}

// MinimumPositions returns, ascending, every 1-based position i where the
// skew of genome[:i] is smallest
func MinimumPositions(genome string) ([]int, error) {
	series, err := Series(genome)
	if err != nil {
		return nil, err
	}

	var positions []int
	least, i := 0, 0
	for v := range series {
		i++
		switch {
		case len(positions) == 0 || v < least:
			least, positions = v, append(positions[:0], i)
		case v == least:
			positions = append(positions, i)
		}
	}
	return positions, nil
}
