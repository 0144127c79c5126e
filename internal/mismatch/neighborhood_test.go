package mismatch

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/ankitson/compbio/internal/dna"
)

func TestNeighborhood(t *testing.T) {
	type args struct {
		pattern string
		d       int
	}
	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr error
	}{
		{
			"zero distance",
			args{"ACG", 0},
			[]string{"ACG"},
			nil,
		},
		{
			"one mismatch",
			args{"ACG", 1},
			[]string{"AAG", "ACA", "ACC", "ACG", "ACT", "AGG", "ATG", "CCG", "GCG", "TCG"},
			nil,
		},
		{
			"single base",
			args{"G", 1},
			[]string{"A", "C", "G", "T"},
			nil,
		},
		{
			"distance past the pattern length",
			args{"A", 3},
			[]string{"A", "C", "G", "T"},
			nil,
		},
		{
			"negative distance",
			args{"ACG", -1},
			nil,
			dna.ErrInvalidParameter,
		},
		{
			"bad symbol",
			args{"ANG", 1},
			nil,
			dna.ErrInvalidSymbol,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Neighborhood(tt.args.pattern, tt.args.d)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Neighborhood() error = %v, want %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Neighborhood() = %v, want %v", got, tt.want)
			}
		})
	}
}

// every member is the pattern's length, within d, and the ball is complete
func TestNeighborhood_ball(t *testing.T) {
	for _, pattern := range []string{"ACGT", "GGGGG", "TACGATC"} {
		for d := 0; d <= 3; d++ {
			nbrs, err := Neighborhood(pattern, d)
			if err != nil {
				t.Fatal(err)
			}
			if !sort.StringsAreSorted(nbrs) {
				t.Errorf("Neighborhood(%s, %d) is not sorted", pattern, d)
			}
			if len(nbrs) != Size(len(pattern), d) {
				t.Errorf("Neighborhood(%s, %d) has %d members, want %d", pattern, d, len(nbrs), Size(len(pattern), d))
			}

			hasPattern := false
			for _, n := range nbrs {
				if len(n) != len(pattern) {
					t.Errorf("Neighborhood(%s, %d) has %s of length %d", pattern, d, n, len(n))
				}
				if dist := dna.HammingDistance(n, pattern); dist > d {
					t.Errorf("Neighborhood(%s, %d) has %s at distance %d", pattern, d, n, dist)
				}
				hasPattern = hasPattern || n == pattern
			}
			if !hasPattern {
				t.Errorf("Neighborhood(%s, %d) is missing the pattern", pattern, d)
			}
		}
	}
}

func TestNeighborhoodWithReverseComplement(t *testing.T) {
	got, err := NeighborhoodWithReverseComplement("AAC", 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"AAC", "GTT"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NeighborhoodWithReverseComplement() = %v, want %v", got, want)
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		k, d, want int
	}{
		{3, 0, 1},
		{3, 1, 10},
		{4, 2, 1 + 12 + 54},
		{2, 5, 16},
	}
	for _, tt := range tests {
		if got := Size(tt.k, tt.d); got != tt.want {
			t.Errorf("Size(%d, %d) = %d, want %d", tt.k, tt.d, got, tt.want)
		}
	}
}
