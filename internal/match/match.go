// Package match is for finding exact and approximate occurrences of a
// pattern in a text and for finding k-mers that form clumps
package match

import (
	"strings"

	"github.com/ankitson/compbio/internal/dna"
)

// Occurrences returns the start index of every (possibly overlapping) exact occurrence
// of pattern in text. A pattern longer than text, or an empty one, has no occurrences
func Occurrences(text, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}

	var starts []int
	for i := 0; ; {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			break
		}
		starts = append(starts, i+j)
		i += j + 1
		if i > len(text)-len(pattern) {
			break
		}
	}
	return starts
}

// ApproxOccurrences returns the start index of every window of text within
// maxDistance mismatches of pattern
func ApproxOccurrences(text, pattern string, maxDistance int) ([]int, error) {
	if err := dna.CheckDistance(maxDistance); err != nil {
		return nil, err
	}
	if maxDistance == 0 {
		return Occurrences(text, pattern), nil
	}

	m := len(pattern)
	var starts []int
	for i := 0; i+m <= len(text); i++ {
		if withinDistance(text[i:i+m], pattern, maxDistance) {
			starts = append(starts, i)
		}
	}
	return starts, nil
}

// ApproxCount is the number of approximate occurrences of pattern in text
func ApproxCount(text, pattern string, maxDistance int) (int, error) {
	starts, err := ApproxOccurrences(text, pattern, maxDistance)
	return len(starts), err
}

// Contains is whether pattern occurs in text with at most maxDistance mismatches.
// It stops at the first hit
func Contains(text, pattern string, maxDistance int) bool {
	m := len(pattern)
	for i := 0; i+m <= len(text); i++ {
		if withinDistance(text[i:i+m], pattern, maxDistance) {
			return true
		}
	}
	return false
}

// withinDistance is HammingDistance(a, b) <= d for equal length a and b,
// bailing out as soon as the budget is spent
func withinDistance(a, b string, d int) bool {
	mm := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			mm++
			if mm > d {
				return false
			}
		}
	}
	return true
}
