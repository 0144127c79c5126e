package match

import (
	"sort"

	"github.com/ankitson/compbio/internal/dna"
)

// Clumps returns, sorted, every k-mer that occurs at least minCount times within
// some windowLen long stretch of text.
//
// The frequency map is built once over the first window. Each one-base slide
// then decrements the k-mer leaving the window and increments the one entering it,
// and only the entering k-mer is tested against minCount since it is the only
// count that went up. That keeps the scan at O(len(text)) with O(windowLen) extra space.
//
// A text shorter than the window has no clumps.
func Clumps(text string, k, windowLen, minCount int) ([]string, error) {
	if err := dna.CheckK(k); err != nil {
		return nil, err
	}
	if windowLen < k {
		return nil, &dna.ParamError{Name: "windowLen", Value: windowLen, Reason: "must be at least k"}
	}
	if minCount <= 0 {
		return nil, &dna.ParamError{Name: "minCount", Value: minCount, Reason: "must be positive"}
	}
	if err := dna.Validate(text); err != nil {
		return nil, err
	}
	if len(text) < windowLen {
		return nil, nil
	}

	freqs, err := dna.KmerFrequencies(text[:windowLen], k)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool)
	for kmer, count := range freqs {
		if count >= minCount {
			found[kmer] = true
		}
	}

	for i := 1; i+windowLen <= len(text); i++ {
		out := text[i-1 : i-1+k]
		if freqs[out]--; freqs[out] == 0 {
			delete(freqs, out)
		}

		in := text[i+windowLen-k : i+windowLen]
		freqs[in]++
		if freqs[in] >= minCount {
			found[in] = true
		}
	}

	clumps := make([]string, 0, len(found))
	for kmer := range found {
		clumps = append(clumps, kmer)
	}
	sort.Strings(clumps)
	return clumps, nil
}
