package motif

import (
	"math"
	"math/rand"

	"github.com/ankitson/compbio/internal/dna"
)

// Randomized restarts from iterations random motif collections. Each run
// repeatedly replaces the collection with the profile-most-probable k-mers
// of its own profile until the score stops improving. The best run is
// returned. rng drives every random choice, so a seeded source reproduces a search
func Randomized(seqs []string, k int, pseudo bool, iterations int, rng *rand.Rand) (Result, error) {
	if err := checkRandom(seqs, k, iterations); err != nil {
		return Result{}, err
	}

	best := Result{Score: math.MaxInt}
	for it := 0; it < iterations; it++ {
		motifs := randomMotifs(seqs, k, rng)
		score, err := Score(motifs)
		if err != nil {
			return Result{}, err
		}

		for {
			p, err := NewProfile(motifs, pseudo)
			if err != nil {
				return Result{}, err
			}
			next := make([]string, len(seqs))
			for i, s := range seqs {
				next[i] = mostProbable(s, p, k)
			}
			nextScore, err := Score(next)
			if err != nil {
				return Result{}, err
			}
			if nextScore >= score {
				break
			}
			motifs, score = next, nextScore
		}

		if score < best.Score {
			best = Result{Motifs: motifs, Score: score}
		}
	}
	return best, nil
}

// Gibbs starts from a random motif collection and, each iteration, drops
// one motif at random and replaces it with a k-mer of the same sequence
// drawn in proportion to its probability under the profile of the rest.
// The replacement is always kept; the best collection seen is returned
func Gibbs(seqs []string, k int, pseudo bool, iterations int, rng *rand.Rand) (Result, error) {
	if err := checkRandom(seqs, k, iterations); err != nil {
		return Result{}, err
	}

	motifs := randomMotifs(seqs, k, rng)
	score, err := Score(motifs)
	if err != nil {
		return Result{}, err
	}
	best := Result{Motifs: append([]string(nil), motifs...), Score: score}

	rest := make([]string, 0, len(seqs))
	for it := 0; it < iterations; it++ {
		drop := rng.Intn(len(seqs))

		rest = rest[:0]
		rest = append(rest, motifs[:drop]...)
		rest = append(rest, motifs[drop+1:]...)
		if len(rest) == 0 {
			// a single sequence has no other motifs to build a profile from
			rest = append(rest, motifs[drop])
		}
		p, err := NewProfile(rest, pseudo)
		if err != nil {
			return Result{}, err
		}

		s := seqs[drop]
		weights := make([]float64, len(s)-k+1)
		for i := range weights {
			weights[i] = p.Prob(s[i : i+k])
		}
		i := WeightedIndex(weights, rng)
		motifs[drop] = s[i : i+k]

		if score, err = Score(motifs); err != nil {
			return Result{}, err
		}
		if score < best.Score {
			best = Result{Motifs: append([]string(nil), motifs...), Score: score}
		}
	}
	return best, nil
}

// WeightedIndex rolls a die with len(weights) faces, face i coming up with
// probability weights[i] / sum(weights). If no weight is positive every face
// is equally likely. Negative weights count as zero
func WeightedIndex(weights []float64, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}
	// float rounding can leave r just above the last positive weight
	return last
}

func randomMotifs(seqs []string, k int, rng *rand.Rand) []string {
	motifs := make([]string, len(seqs))
	for i, s := range seqs {
		start := rng.Intn(len(s) - k + 1)
		motifs[i] = s[start : start+k]
	}
	return motifs
}

func checkRandom(seqs []string, k, iterations int) error {
	if err := checkSequences(seqs, k); err != nil {
		return err
	}
	if iterations <= 0 {
		return &dna.ParamError{Name: "iterations", Value: iterations, Reason: "must be positive"}
	}
	return nil
}
