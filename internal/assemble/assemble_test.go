package assemble

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/ankitson/compbio/internal/dna"
)

func TestComposition(t *testing.T) {
	type args struct {
		text string
		k    int
	}
	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr error
	}{
		{"textbook", args{"CAATCCAAC", 5}, []string{"CAATC", "AATCC", "ATCCA", "TCCAA", "CCAAC"}, nil},
		{"whole text", args{"ACGT", 4}, []string{"ACGT"}, nil},
		{"k too large", args{"ACG", 4}, nil, dna.ErrInvalidParameter},
		{"k zero", args{"ACG", 0}, nil, dna.ErrInvalidParameter},
		{"bad symbol", args{"ACNGT", 2}, nil, dna.ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Composition(tt.args.text, tt.args.k)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Composition() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Composition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathToString(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{"3-mers", []string{"ATG", "TGC", "GCA"}, "ATGCA"},
		{"5-mers", []string{"ACCGA", "CCGAA", "CGAAG", "GAAGC", "AAGCT"}, "ACCGAAGCT"},
		{"single", []string{"GATTACA"}, "GATTACA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathToString(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("PathToString() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := PathToString(nil); !errors.Is(err, dna.ErrEmptyInput) {
		t.Errorf("PathToString(nil) error = %v, want %v", err, dna.ErrEmptyInput)
	}
}

func TestPathToString_composition(t *testing.T) {
	text := "TAATGCCATGGGATGTT"
	kmers, err := Composition(text, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := PathToString(kmers); got != text {
		t.Errorf("PathToString(Composition()) = %v, want %v", got, text)
	}
}

func TestOverlapGraph(t *testing.T) {
	g, err := OverlapGraph([]string{"ATGCG", "GCATG", "CATGC", "AGGCA", "GGCAT", "GGCAC"})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string][]string{
		"GCATG": {"CATGC"},
		"CATGC": {"ATGCG"},
		"AGGCA": {"GGCAT", "GGCAC"},
		"GGCAT": {"GCATG"},
	}
	if got := g.Adjacency(); !reflect.DeepEqual(got, want) {
		t.Errorf("OverlapGraph() = %v, want %v", got, want)
	}
	if g.Len() != 6 {
		t.Errorf("OverlapGraph() has %d nodes, want every read", g.Len())
	}

	if _, err := OverlapGraph([]string{"ACG", "AC"}); !errors.Is(err, dna.ErrInvalidParameter) {
		t.Errorf("OverlapGraph() error = %v, want %v", err, dna.ErrInvalidParameter)
	}
}

func TestDeBruijnFromString(t *testing.T) {
	g, err := DeBruijnFromString("AAGATTCTCTAAGA", 4)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string][]string{
		"AAG": {"AGA", "AGA"},
		"AGA": {"GAT"},
		"GAT": {"ATT"},
		"ATT": {"TTC"},
		"TTC": {"TCT"},
		"TCT": {"CTC", "CTA"},
		"CTC": {"TCT"},
		"CTA": {"TAA"},
		"TAA": {"AAG"},
	}
	if got := g.Adjacency(); !reflect.DeepEqual(got, want) {
		t.Errorf("DeBruijnFromString() = %v, want %v", got, want)
	}

	for _, k := range []int{0, 1, 15} {
		if _, err := DeBruijnFromString("AAGATTCTCTAAGA", k); !errors.Is(err, dna.ErrInvalidParameter) {
			t.Errorf("DeBruijnFromString(k=%d) error = %v, want %v", k, err, dna.ErrInvalidParameter)
		}
	}
}

func TestDeBruijnFromKmers(t *testing.T) {
	kmers := []string{"GAGG", "CAGG", "GGGG", "GGGA", "CAGG", "AGGG", "GGAG"}

	want := map[string][]string{
		"GAG": {"AGG"},
		"CAG": {"AGG", "AGG"},
		"GGG": {"GGG", "GGA"},
		"AGG": {"GGG"},
		"GGA": {"GAG"},
	}
	for _, k := range []int{0, 4} {
		g, err := DeBruijnFromKmers(kmers, k)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.Adjacency(); !reflect.DeepEqual(got, want) {
			t.Errorf("DeBruijnFromKmers(k=%d) = %v, want %v", k, got, want)
		}
	}

	tests := []struct {
		name  string
		kmers []string
		k     int
		want  error
	}{
		{"empty", nil, 0, dna.ErrEmptyInput},
		{"mixed lengths", []string{"ACG", "ACGT"}, 0, dna.ErrInvalidParameter},
		{"k disagrees", []string{"ACG"}, 4, dna.ErrInvalidParameter},
		{"bad symbol", []string{"ACG", "AXG"}, 0, dna.ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DeBruijnFromKmers(tt.kmers, tt.k); !errors.Is(err, tt.want) {
				t.Errorf("DeBruijnFromKmers() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReconstruct(t *testing.T) {
	text := "AAGATTCTCTAAGA"
	g, err := DeBruijnFromString(text, 4)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Reconstruct(g)
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Errorf("Reconstruct() = %v, want %v", got, text)
	}
}

// any reconstruction has the input's length and its k-mer composition
func TestReconstruct_composition(t *testing.T) {
	for _, text := range []string{"TAATGCCATGGGATGTT", "GGCTTACCA", "ACGTACGTTTACG", "AAAAAAAA"} {
		g, err := DeBruijnFromString(text, 3)
		if err != nil {
			t.Fatal(err)
		}

		got, err := Reconstruct(g)
		if err != nil {
			t.Fatalf("Reconstruct(%s) error = %v", text, err)
		}
		if len(got) != len(text) {
			t.Errorf("Reconstruct(%s) = %s, wrong length", text, got)
		}

		want, _ := Composition(text, 3)
		have, _ := Composition(got, 3)
		sort.Strings(want)
		sort.Strings(have)
		if !reflect.DeepEqual(have, want) {
			t.Errorf("Reconstruct(%s) = %s, composition %v, want %v", text, got, have, want)
		}
	}
}

func TestStringFromKmers(t *testing.T) {
	got, err := StringFromKmers([]string{"CTTA", "ACCA", "TACC", "GGCT", "GCTT", "TTAC"})
	if err != nil {
		t.Fatal(err)
	}
	if want := "GGCTTACCA"; got != want {
		t.Errorf("StringFromKmers() = %v, want %v", got, want)
	}
}
