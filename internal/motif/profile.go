// Package motif finds short patterns shared by a set of DNA sequences:
// exhaustive enumeration and median strings, and profile-driven greedy,
// randomized and Gibbs sampling searches
package motif

import (
	"fmt"
	"math"

	"github.com/ankitson/compbio/internal/dna"
	"github.com/skelterjohn/go.matrix"
)

// CountMatrix holds, for each position of a motif collection, how many
// motifs have each base there. Rows are A, C, G, T
type CountMatrix [4][]int

// Counts tallies the bases at each position of motifs. With pseudo, every
// cell starts at 1 instead of 0
func Counts(motifs []string, pseudo bool) (CountMatrix, error) {
	var c CountMatrix
	k, err := checkMotifs(motifs)
	if err != nil {
		return c, err
	}

	start := 0
	if pseudo {
		start = 1
	}
	for b := range c {
		c[b] = make([]int, k)
		for j := range c[b] {
			c[b][j] = start
		}
	}

	for _, m := range motifs {
		for j := 0; j < k; j++ {
			b, _ := dna.Index(m[j])
			c[b][j]++
		}
	}
	return c, nil
}

// K is the motif length
func (c CountMatrix) K() int {
	return len(c[0])
}

// Score sums, over columns, the column total less its largest count: the
// number of motif bases that disagree with the consensus
func (c CountMatrix) Score() int {
	score := 0
	for j := 0; j < c.K(); j++ {
		total, best := 0, 0
		for b := range c {
			total += c[b][j]
			best = max(best, c[b][j])
		}
		score += total - best
	}
	return score
}

// Score is the count score of motifs, without pseudo-counts
func Score(motifs []string) (int, error) {
	c, err := Counts(motifs, false)
	if err != nil {
		return 0, err
	}
	return c.Score(), nil
}

// Profile is a 4 x k matrix of per-position base probabilities, rows A, C, G, T
type Profile struct {
	m *matrix.DenseMatrix
}

// NewProfile normalizes the count matrix of motifs column by column
func NewProfile(motifs []string, pseudo bool) (*Profile, error) {
	c, err := Counts(motifs, pseudo)
	if err != nil {
		return nil, err
	}

	m := matrix.Zeros(4, c.K())
	for j := 0; j < c.K(); j++ {
		total := 0
		for b := range c {
			total += c[b][j]
		}
		for b := range c {
			m.Set(b, j, float64(c[b][j])/float64(total))
		}
	}
	return &Profile{m: m}, nil
}

// ProfileFromRows builds a profile from four equal length rows of
// probabilities, ordered A, C, G, T
func ProfileFromRows(rows [][]float64) (*Profile, error) {
	if len(rows) != 4 {
		return nil, &dna.ParamError{Name: "profile rows", Value: len(rows), Reason: "want 4 (A, C, G, T)"}
	}
	k := len(rows[0])
	if k == 0 {
		return nil, dna.ErrEmptyInput
	}

	m := matrix.Zeros(4, k)
	for b, row := range rows {
		if len(row) != k {
			return nil, &dna.ParamError{Name: "profile row length", Value: len(row), Reason: fmt.Sprintf("want %d", k)}
		}
		for j, p := range row {
			if p < 0 || p > 1 || math.IsNaN(p) {
				return nil, fmt.Errorf("profile[%d][%d] = %v: %w", b, j, p, dna.ErrInvalidParameter)
			}
			m.Set(b, j, p)
		}
	}
	return &Profile{m: m}, nil
}

// K is the number of positions in the profile
func (p *Profile) K() int {
	return p.m.Cols()
}

// At is the probability of base index b at position j
func (p *Profile) At(b, j int) float64 {
	return p.m.Get(b, j)
}

// Prob is the probability of kmer under the profile. kmer must be K() long
// and hold only A, C, G and T
func (p *Profile) Prob(kmer string) float64 {
	prob := 1.0
	for j := 0; j < len(kmer); j++ {
		b, _ := dna.Index(kmer[j])
		prob *= p.m.Get(b, j)
		if prob == 0 {
			return 0
		}
	}
	return prob
}

// Rows copies the profile out as four rows, A, C, G, T
func (p *Profile) Rows() [][]float64 {
	rows := make([][]float64, 4)
	for b := range rows {
		rows[b] = make([]float64, p.K())
		for j := range rows[b] {
			rows[b][j] = p.m.Get(b, j)
		}
	}
	return rows
}

// EntropyScore sums the Shannon entropy, in bits, of every column. Zero
// probabilities contribute nothing
func EntropyScore(p *Profile) float64 {
	var h float64
	for j := 0; j < p.K(); j++ {
		for b := 0; b < 4; b++ {
			if q := p.At(b, j); q > 0 {
				h -= q * math.Log2(q)
			}
		}
	}
	return h
}

// ProfileMostProbable returns the first k-mer of text with the highest
// probability under p. If every window has probability zero it's the first window
func ProfileMostProbable(text string, p *Profile, k int) (string, error) {
	if err := dna.CheckK(k); err != nil {
		return "", err
	}
	if k != p.K() {
		return "", &dna.ParamError{Name: "k", Value: k, Reason: fmt.Sprintf("profile has %d columns", p.K())}
	}
	if k > len(text) {
		return "", &dna.ParamError{Name: "k", Value: k, Reason: "larger than the text"}
	}
	if err := dna.Validate(text); err != nil {
		return "", err
	}
	return mostProbable(text, p, k), nil
}

// mostProbable is ProfileMostProbable without the checks
func mostProbable(text string, p *Profile, k int) string {
	best, bestProb := text[:k], 0.0
	for i := 0; i+k <= len(text); i++ {
		if prob := p.Prob(text[i : i+k]); prob > bestProb {
			best, bestProb = text[i:i+k], prob
		}
	}
	return best
}

// checkMotifs returns the shared length of a non-empty, equal length, all ACGT motif collection
func checkMotifs(motifs []string) (int, error) {
	if len(motifs) == 0 {
		return 0, dna.ErrEmptyInput
	}

	k := len(motifs[0])
	if k == 0 {
		return 0, &dna.ParamError{Name: "motif length", Value: 0, Reason: "must be positive"}
	}
	for i, m := range motifs {
		if len(m) != k {
			return 0, fmt.Errorf("motif %d (%s): %w", i, m, &dna.ParamError{Name: "motif length", Value: len(m), Reason: fmt.Sprintf("want %d", k)})
		}
		if err := dna.Validate(m); err != nil {
			return 0, fmt.Errorf("motif %d: %w", i, err)
		}
	}
	return k, nil
}

// checkSequences validates the input of the searches: at least one sequence,
// all ACGT, and 0 < k <= the shortest sequence
func checkSequences(seqs []string, k int) error {
	if len(seqs) == 0 {
		return dna.ErrEmptyInput
	}
	if err := dna.CheckK(k); err != nil {
		return err
	}
	for i, s := range seqs {
		if k > len(s) {
			return fmt.Errorf("sequence %d: %w", i, &dna.ParamError{Name: "k", Value: k, Reason: fmt.Sprintf("longer than the sequence (%d)", len(s))})
		}
		if err := dna.Validate(s); err != nil {
			return fmt.Errorf("sequence %d: %w", i, err)
		}
	}
	return nil
}
