package mismatch

import (
	"github.com/ankitson/compbio/internal/dna"
)

// FrequentWords returns the k-mers with the most approximate occurrences
// (at most d mismatches) in text, sorted, along with that count.
// The k-mers needn't occur in text exactly. A text shorter than k has no
// windows, so there are no words and the count is 0
func FrequentWords(text string, k, d int) ([]string, int, error) {
	return frequent(text, k, d, false)
}

// FrequentWordsWithReverseComplements is FrequentWords where the count of a
// k-mer also includes the approximate occurrences of its reverse complement
func FrequentWordsWithReverseComplements(text string, k, d int) ([]string, int, error) {
	return frequent(text, k, d, true)
}

func frequent(text string, k, d int, withRC bool) ([]string, int, error) {
	if err := dna.CheckK(k); err != nil {
		return nil, 0, err
	}
	if err := dna.CheckDistance(d); err != nil {
		return nil, 0, err
	}
	if err := dna.Validate(text); err != nil {
		return nil, 0, err
	}

	freqs := make(map[string]int)
	for i := 0; i+k <= len(text); i++ {
		nbrs, err := ball(text[i:i+k], d)
		if err != nil {
			return nil, 0, err
		}
		for n := range nbrs {
			freqs[n]++
			if withRC {
				rc, _ := dna.ReverseComplement(n) // n is built from the alphabet
				freqs[rc]++
			}
		}
	}

	max := 0
	for _, c := range freqs {
		if c > max {
			max = c
		}
	}

	var words []string
	for _, kmer := range dna.SortedKeys(freqs) {
		if freqs[kmer] == max {
			words = append(words, kmer)
		}
	}
	return words, max, nil
}
