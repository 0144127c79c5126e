package motif

import (
	"math"
	"sort"

	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/match"
	"github.com/ankitson/compbio/internal/mismatch"
)

// maxMedianK bounds the 4^k candidates of MedianStrings
const maxMedianK = 12

// Enumerate returns, sorted, every k-mer that occurs with at most d
// mismatches in each of seqs. Candidates are the d-neighborhoods of the
// k-mers of every sequence, and the sequences are searched on up to workers
// goroutines.
//
// This is brute force, O(total k-mers * 4^d * total length); keep d and k small
func Enumerate(seqs []string, k, d, workers int) ([]string, error) {
	if err := checkSequences(seqs, k); err != nil {
		return nil, err
	}
	if err := dna.CheckDistance(d); err != nil {
		return nil, err
	}

	found := make([]map[string]struct{}, len(seqs))
	errs := make([]error, len(seqs))
	forEach(len(seqs), workers, func(i int) {
		s, motifs, tried := seqs[i], make(map[string]struct{}), make(map[string]struct{})
		for j := 0; j+k <= len(s); j++ {
			nbrs, err := mismatch.Neighborhood(s[j:j+k], d)
			if err != nil {
				errs[i] = err
				return
			}
			for _, n := range nbrs {
				if _, ok := tried[n]; ok {
					continue
				}
				tried[n] = struct{}{}
				if inAll(seqs, n, d) {
					motifs[n] = struct{}{}
				}
			}
		}
		found[i] = motifs
	})

	all := make(map[string]struct{})
	for i := range seqs {
		if errs[i] != nil {
			return nil, errs[i]
		}
		for m := range found[i] {
			all[m] = struct{}{}
		}
	}

	motifs := make([]string, 0, len(all))
	for m := range all {
		motifs = append(motifs, m)
	}
	sort.Strings(motifs)
	return motifs, nil
}

func inAll(seqs []string, pattern string, d int) bool {
	for _, s := range seqs {
		if !match.Contains(s, pattern, d) {
			return false
		}
	}
	return true
}

// Distance is the sum, over seqs, of the smallest Hamming distance between
// pattern and any window of the sequence
func Distance(pattern string, seqs []string) int {
	k, total := len(pattern), 0
	for _, s := range seqs {
		best := math.MaxInt
		for i := 0; i+k <= len(s) && best > 0; i++ {
			best = min(best, dna.HammingDistance(pattern, s[i:i+k]))
		}
		total += best
	}
	return total
}

// MedianStrings returns, sorted, every k-mer minimizing Distance to seqs.
// All 4^k k-mers are scored, split into ranges across up to workers goroutines
func MedianStrings(seqs []string, k, workers int) ([]string, error) {
	if err := checkSequences(seqs, k); err != nil {
		return nil, err
	}
	if k > maxMedianK {
		return nil, &dna.ParamError{Name: "k", Value: k, Reason: "too large for an exhaustive search"}
	}

	type partial struct {
		dist  int
		kmers []string
	}

	total := 1 << (2 * k)
	parts := max(1, min(workers, total))
	results := make([]partial, parts)
	forEach(parts, parts, func(p int) {
		lo, hi := p*total/parts, (p+1)*total/parts
		best := partial{dist: math.MaxInt}
		for i := lo; i < hi; i++ {
			kmer := decode(i, k)
			switch d := Distance(kmer, seqs); {
			case d < best.dist:
				best = partial{dist: d, kmers: []string{kmer}}
			case d == best.dist:
				best.kmers = append(best.kmers, kmer)
			}
		}
		results[p] = best
	})

	best := partial{dist: math.MaxInt}
	for _, r := range results {
		switch {
		case r.dist < best.dist:
			best = r
		case r.dist == best.dist:
			best.kmers = append(best.kmers, r.kmers...)
		}
	}

	// ranges are in lexicographic order already
	return best.kmers, nil
}

// decode is the k-mer with lexicographic index i, as base-4 digits of ACGT
func decode(i, k int) string {
	b := make([]byte, k)
	for j := k - 1; j >= 0; j-- {
		b[j] = dna.Bases[i&3]
		i >>= 2
	}
	return string(b)
}
