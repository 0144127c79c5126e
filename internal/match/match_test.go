package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ankitson/compbio/internal/dna"
)

func TestOccurrences(t *testing.T) {
	type args struct {
		text    string
		pattern string
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{
			"overlapping occurrences",
			args{"GATATATGCATATACTT", "ATAT"},
			[]int{1, 3, 9},
		},
		{
			"match at both ends",
			args{"ACGTTTACG", "ACG"},
			[]int{0, 6},
		},
		{
			"homopolymer",
			args{"AAAA", "AA"},
			[]int{0, 1, 2},
		},
		{
			"pattern longer than text",
			args{"ACG", "ACGT"},
			nil,
		},
		{
			"no match",
			args{"ACGT", "TT"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Occurrences(tt.args.text, tt.args.pattern); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Occurrences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApproxOccurrences(t *testing.T) {
	type args struct {
		text    string
		pattern string
		d       int
	}
	tests := []struct {
		name    string
		args    args
		want    []int
		wantErr bool
	}{
		{
			"textbook",
			args{"CGCCCGAATCCAGAACGCATTCCCATATTTCGGGACCACTGGCCTCCACGGTACGGACGTCAATCAAAT", "ATTCTGGA", 3},
			[]int{6, 7, 26, 27},
			false,
		},
		{
			"zero distance is exact matching",
			args{"GATATATGCATATACTT", "ATAT", 0},
			[]int{1, 3, 9},
			false,
		},
		{
			"every window within distance",
			args{"AAAA", "CC", 2},
			[]int{0, 1, 2},
			false,
		},
		{
			"negative distance",
			args{"AAAA", "CC", -1},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApproxOccurrences(tt.args.text, tt.args.pattern, tt.args.d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApproxOccurrences() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, dna.ErrInvalidParameter) {
				t.Errorf("ApproxOccurrences() error = %v, want ErrInvalidParameter", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApproxOccurrences() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApproxCount(t *testing.T) {
	got, err := ApproxCount("AACAAGCTGATAAACATTTAAAGAG", "AAAAA", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Errorf("ApproxCount() = %d, want 11", got)
	}
}

func TestContains(t *testing.T) {
	if !Contains("TTTTGACTT", "GACCT", 1) {
		t.Error("Contains() = false, want true for one mismatch")
	}
	if Contains("TTTTGACTT", "GAGGT", 1) {
		t.Error("Contains() = true, want false for three mismatches")
	}
}
