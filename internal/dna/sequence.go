// Package dna is for the nucleotide alphabet and the sequence utilities
// every other package builds on: validation, (reverse) complements,
// Hamming distance and k-mer counting
package dna

import (
	"sort"
	"strings"
)

// Bases is the nucleotide alphabet, in the row order used by count and profile matrices
const Bases = "ACGT"

// complement maps each base to its Watson-Crick pair. zero for anything else
var complement [256]byte

// index maps each base to its row in Bases, -1 otherwise
var index [256]int8

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'

	for i := range index {
		index[i] = -1
	}
	for i := 0; i < len(Bases); i++ {
		index[Bases[i]] = int8(i)
	}
}

// Index returns the row of base b in Bases and whether b is in the alphabet
func Index(b byte) (int, bool) {
	i := index[b]
	return int(i), i >= 0
}

// Validate returns a SymbolError for the first character of seq outside the alphabet
func Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		if index[seq[i]] < 0 {
			return &SymbolError{Symbol: seq[i], Pos: i}
		}
	}
	return nil
}

// ValidateAll runs Validate over each sequence
func ValidateAll(seqs []string) error {
	for _, s := range seqs {
		if err := Validate(s); err != nil {
			return err
		}
	}
	return nil
}

// Complement maps each base to its pair without reversing
func Complement(seq string) (string, error) {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := complement[seq[i]]
		if c == 0 {
			return "", &SymbolError{Symbol: seq[i], Pos: i}
		}
		out[i] = c
	}
	return string(out), nil
}

// ReverseComplement reverses seq and complements each base
func ReverseComplement(seq string) (string, error) {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			return "", &SymbolError{Symbol: seq[n-1-i], Pos: n - 1 - i}
		}
		out[i] = c
	}
	return string(out), nil
}

// HammingDistance counts the positions where a and b differ.
//
// Unlike the textbook definition it accepts strings of unequal length:
// the positions past the end of the shorter string each count as one
// mismatch, so the result is the mismatches over the shared prefix plus
// the difference in length
func HammingDistance(a, b string) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	dist := len(long) - len(short)
	for i := 0; i < len(short); i++ {
		if short[i] != long[i] {
			dist++
		}
	}
	return dist
}

// Canonical picks the lexicographically smaller of kmer and its reverse complement
func Canonical(kmer string) (string, error) {
	rc, err := ReverseComplement(kmer)
	if err != nil {
		return "", err
	}
	if rc < kmer {
		return rc, nil
	}
	return kmer, nil
}

// SortedKeys returns the keys of a frequency map in lexicographic order
func SortedKeys(freqs map[string]int) []string {
	keys := make([]string, 0, len(freqs))
	for k := range freqs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Upper trims whitespace and upper-cases raw input so "acgt\n" validates
func Upper(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}
