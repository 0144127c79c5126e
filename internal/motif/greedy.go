package motif

import "math"

// Result is a motif collection, one k-mer per input sequence, and its count score
type Result struct {
	Motifs []string `json:"motifs"`
	Score  int      `json:"score"`
}

// Greedy seeds a motif collection with each k-mer of the first sequence, then
// adds the profile-most-probable k-mer of each following sequence under the
// profile of the motifs chosen so far. The best scoring collection wins, the
// earliest seed on ties. Seeds are tried on up to workers goroutines
func Greedy(seqs []string, k int, pseudo bool, workers int) (Result, error) {
	if err := checkSequences(seqs, k); err != nil {
		return Result{}, err
	}

	seeds := len(seqs[0]) - k + 1
	results := make([]Result, seeds)
	errs := make([]error, seeds)
	forEach(seeds, workers, func(i int) {
		motifs := make([]string, 1, len(seqs))
		motifs[0] = seqs[0][i : i+k]
		for _, s := range seqs[1:] {
			p, err := NewProfile(motifs, pseudo)
			if err != nil {
				errs[i] = err
				return
			}
			motifs = append(motifs, mostProbable(s, p, k))
		}
		results[i].Motifs = motifs
		results[i].Score, errs[i] = Score(motifs)
	})

	best := Result{Score: math.MaxInt}
	for i, r := range results {
		if errs[i] != nil {
			return Result{}, errs[i]
		}
		if r.Score < best.Score {
			best = r
		}
	}
	return best, nil
}
