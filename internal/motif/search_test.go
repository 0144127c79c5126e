package motif

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/ankitson/compbio/internal/dna"
)

var (
	enumerateSeqs = []string{"ATTTGGC", "TGCCTTA", "CGGTATC", "GAAAATT"}
	greedySeqs    = []string{"GGCGTTCAGGCA", "AAGAATCAGTCA", "CAAGGAGTTCGC", "CACGTCAATCAC", "CAATAATATTCG"}
)

func TestEnumerate(t *testing.T) {
	for _, workers := range []int{1, 3} {
		got, err := Enumerate(enumerateSeqs, 3, 1, workers)
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"ATA", "ATT", "GTT", "TTT"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Enumerate(workers=%d) = %v, want %v", workers, got, want)
		}
	}
}

func TestEnumerate_errors(t *testing.T) {
	type args struct {
		seqs []string
		k    int
		d    int
	}
	tests := []struct {
		name string
		args args
		want error
	}{
		{"no sequences", args{nil, 3, 1}, dna.ErrEmptyInput},
		{"k too long", args{[]string{"ACGT", "AC"}, 3, 1}, dna.ErrInvalidParameter},
		{"negative d", args{enumerateSeqs, 3, -1}, dna.ErrInvalidParameter},
		{"bad symbol", args{[]string{"ACGT", "ACNT"}, 2, 0}, dna.ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Enumerate(tt.args.seqs, tt.args.k, tt.args.d, 2); !errors.Is(err, tt.want) {
				t.Errorf("Enumerate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	seqs := []string{"TTACCTTAAC", "GATATCTGTC", "ACGGCGTTCG", "CCCTAAAGAG", "CGTCAGAGGT"}
	if got := Distance("AAA", seqs); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestMedianStrings(t *testing.T) {
	type args struct {
		seqs []string
		k    int
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{"textbook", args{[]string{"AAATTGACGCAT", "GACGACCACGTT", "CGTCAGCGCCTG", "GCTGAGCACCGG", "AGTTCGGGACAG"}, 3}, []string{"GAC"}},
		{"repeated", args{[]string{"ACGT", "ACGT", "ACGT"}, 3}, []string{"ACG", "CGT"}},
		{"consensus", args{[]string{"ATA", "ACA", "AGA", "AAT", "AAC"}, 3}, []string{"AAA"}},
		{"two way tie", args{[]string{"AAG", "AAT"}, 3}, []string{"AAG", "AAT"}},
		{"enumerate set", args{enumerateSeqs, 3}, []string{"ATT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, workers := range []int{1, 4} {
				got, err := MedianStrings(tt.args.seqs, tt.args.k, workers)
				if err != nil {
					t.Fatal(err)
				}
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("MedianStrings(workers=%d) = %v, want %v", workers, got, tt.want)
				}
			}
		})
	}

	if _, err := MedianStrings(nil, 3, 1); !errors.Is(err, dna.ErrEmptyInput) {
		t.Errorf("MedianStrings() error = %v, want %v", err, dna.ErrEmptyInput)
	}
}

func TestGreedy(t *testing.T) {
	tests := []struct {
		name   string
		pseudo bool
		want   []string
	}{
		{"counts", false, []string{"CAG", "CAG", "CAA", "CAA", "CAA"}},
		{"pseudo-counts", true, []string{"TTC", "ATC", "TTC", "ATC", "TTC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, workers := range []int{1, 4} {
				got, err := Greedy(greedySeqs, 3, tt.pseudo, workers)
				if err != nil {
					t.Fatal(err)
				}
				if !reflect.DeepEqual(got.Motifs, tt.want) {
					t.Errorf("Greedy(workers=%d) = %v, want %v", workers, got.Motifs, tt.want)
				}
				if score, _ := Score(tt.want); got.Score != score {
					t.Errorf("Greedy(workers=%d) score = %v, want %v", workers, got.Score, score)
				}
			}
		})
	}
}

// isCollection is whether motifs has one k-mer taken from each of seqs
func isCollection(motifs, seqs []string, k int) bool {
	if len(motifs) != len(seqs) {
		return false
	}
	for i, m := range motifs {
		if len(m) != k || !strings.Contains(seqs[i], m) {
			return false
		}
	}
	return true
}

func TestRandomized(t *testing.T) {
	for _, pseudo := range []bool{false, true} {
		got, err := Randomized(greedySeqs, 3, pseudo, 200, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatal(err)
		}
		if !isCollection(got.Motifs, greedySeqs, 3) {
			t.Errorf("Randomized() = %v, not one k-mer per sequence", got.Motifs)
		}
		if score, _ := Score(got.Motifs); got.Score != score {
			t.Errorf("Randomized() score = %v, want %v", got.Score, score)
		}

		again, _ := Randomized(greedySeqs, 3, pseudo, 200, rand.New(rand.NewSource(7)))
		if !reflect.DeepEqual(got, again) {
			t.Errorf("Randomized() = %v then %v with the same seed", got, again)
		}
	}

	if _, err := Randomized(greedySeqs, 3, true, 0, rand.New(rand.NewSource(1))); !errors.Is(err, dna.ErrInvalidParameter) {
		t.Errorf("Randomized() error = %v, want %v", err, dna.ErrInvalidParameter)
	}
}

// a planted motif with no noise is found from any start that overlaps it,
// so many restarts always find it
func TestRandomized_planted(t *testing.T) {
	seqs := []string{"ACGTTTTT", "TTACGTTT", "TTTTACGT"}
	got, err := Randomized(seqs, 4, false, 100, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if got.Score > 2 {
		t.Errorf("Randomized() = %v, want score at most 2", got)
	}
}

func TestGibbs(t *testing.T) {
	got, err := Gibbs(greedySeqs, 3, true, 300, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}
	if !isCollection(got.Motifs, greedySeqs, 3) {
		t.Errorf("Gibbs() = %v, not one k-mer per sequence", got.Motifs)
	}
	if score, _ := Score(got.Motifs); got.Score != score {
		t.Errorf("Gibbs() score = %v, want %v", got.Score, score)
	}

	again, _ := Gibbs(greedySeqs, 3, true, 300, rand.New(rand.NewSource(11)))
	if !reflect.DeepEqual(got, again) {
		t.Errorf("Gibbs() = %v then %v with the same seed", got, again)
	}

	// one sequence still samples
	single, err := Gibbs([]string{"ACGTAC"}, 2, false, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if single.Score != 0 {
		t.Errorf("Gibbs(single) = %v, want score 0", single)
	}
}

func TestWeightedIndex(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		if got := WeightedIndex([]float64{0, 0, 5, 0}, rng); got != 2 {
			t.Fatalf("WeightedIndex() = %v, want 2", got)
		}
		if got := WeightedIndex([]float64{0, 0, 0}, rng); got < 0 || got > 2 {
			t.Fatalf("WeightedIndex(all zero) = %v, out of range", got)
		}
	}

	const rolls = 100000
	counts := make([]int, 4)
	for i := 0; i < rolls; i++ {
		counts[WeightedIndex([]float64{1, 1, 1, 10}, rng)]++
	}
	if frac := float64(counts[3]) / rolls; frac < 0.74 || frac > 0.80 {
		t.Errorf("WeightedIndex() picked the heavy face %.3f of the time, want about %.3f", frac, 10.0/13)
	}
}
