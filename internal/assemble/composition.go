// Package assemble turns DNA into k-mers and k-mers into graphs, and spells
// sequences back out of walks through those graphs
package assemble

import (
	"strings"

	"github.com/ankitson/compbio/internal/dna"
)

// Composition returns the overlapping k-mers of text, one per start offset, in order
func Composition(text string, k int) ([]string, error) {
	if err := checkText(text, k); err != nil {
		return nil, err
	}

	kmers := make([]string, 0, len(text)-k+1)
	for i := 0; i+k <= len(text); i++ {
		kmers = append(kmers, text[i:i+k])
	}
	return kmers, nil
}

// PathToString spells the sequence of a walk whose consecutive labels overlap
// in all but one character: the first label followed by the last character of
// every label after it
func PathToString(path []string) (string, error) {
	if len(path) == 0 {
		return "", dna.ErrEmptyInput
	}

	var b strings.Builder
	b.Grow(len(path[0]) + len(path) - 1)
	b.WriteString(path[0])
	for _, label := range path[1:] {
		if label == "" {
			return "", &dna.ParamError{Name: "label length", Value: 0, Reason: "path labels must not be empty"}
		}
		b.WriteByte(label[len(label)-1])
	}
	return b.String(), nil
}

// checkText fails fast on bad symbols and on a k that doesn't fit the text
func checkText(text string, k int) error {
	if err := dna.CheckK(k); err != nil {
		return err
	}
	if k > len(text) {
		return &dna.ParamError{Name: "k", Value: k, Reason: "larger than the text"}
	}
	return dna.Validate(text)
}
