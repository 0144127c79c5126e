// Package result holds command outputs as tagged variants, each with its
// own notion of equality, so a computed answer can be checked against an
// expected one
package result

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ankitson/compbio/internal/traverse"
)

// Kind is the shape of a result
type Kind int

const (
	// Single is one value, e.g. a reconstructed genome or a distance
	Single Kind = iota

	// List is an ordered sequence of values, e.g. a k-mer composition
	List

	// Set is an unordered collection of distinct values, e.g. frequent words
	Set

	// Cycle is a closed walk whose first value repeats as its last. Two
	// cycles are equal if one is a rotation of the other
	Cycle

	// Lines is a Set whose values are whole lines, e.g. an adjacency list
	Lines

	// Path is an open walk, compared in order like a List
	Path
)

var kindNames = map[Kind]string{Single: "single", List: "list", Set: "set", Cycle: "cycle", Lines: "lines", Path: "path"}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind is the Kind named s
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown result kind %q, expected single, list, set, cycle, lines or path", s)
}

// Result is a computed or expected answer
type Result struct {
	kind   Kind
	values []string
}

// NewSingle wraps one value
func NewSingle(v string) Result {
	return Result{kind: Single, values: []string{v}}
}

// NewList keeps values in order
func NewList(values []string) Result {
	return Result{kind: List, values: append([]string{}, values...)}
}

// NewSet sorts and deduplicates values
func NewSet(values []string) Result {
	vs := append([]string{}, values...)
	sort.Strings(vs)

	uniq := vs[:0]
	for i, v := range vs {
		if i == 0 || v != vs[i-1] {
			uniq = append(uniq, v)
		}
	}
	return Result{kind: Set, values: uniq}
}

// NewLines sorts and deduplicates lines, dropping blank ones
func NewLines(lines []string) Result {
	var kept []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}
	r := NewSet(kept)
	r.kind = Lines
	return r
}

// NewPath keeps an open walk in order
func NewPath(walk []string) Result {
	return Result{kind: Path, values: append([]string{}, walk...)}
}

// NewCycle keeps a closed walk in order
func NewCycle(walk []string) Result {
	return Result{kind: Cycle, values: append([]string{}, walk...)}
}

// Ints formats numbers, e.g. positions, as a result of the given kind
func Ints(kind Kind, ns []int) Result {
	vs := make([]string, len(ns))
	for i, n := range ns {
		vs[i] = strconv.Itoa(n)
	}
	return New(kind, vs)
}

// New builds a result of any kind. A Single keeps only its first value,
// or the empty string if there's none
func New(kind Kind, values []string) Result {
	switch kind {
	case Single:
		if len(values) == 0 {
			return NewSingle("")
		}
		return NewSingle(values[0])
	case Set:
		return NewSet(values)
	case Cycle:
		return NewCycle(values)
	case Lines:
		return NewLines(values)
	case Path:
		return NewPath(values)
	default:
		return NewList(values)
	}
}

// Parse reads an expected answer. Values are separated by whitespace,
// commas or "->". A Single is the whole trimmed text and Lines are split
// on newlines
func Parse(kind Kind, text string) Result {
	switch kind {
	case Single:
		return NewSingle(strings.TrimSpace(text))
	case Lines:
		return NewLines(strings.Split(text, "\n"))
	}

	text = strings.ReplaceAll(text, "->", " ")
	return New(kind, strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}))
}

// Kind is the variant of r
func (r Result) Kind() Kind {
	return r.kind
}

// Values is a copy of the values of r. A Set's values are sorted
func (r Result) Values() []string {
	return append([]string{}, r.values...)
}

// Equal compares two results of the same kind by that kind's rules. Results
// of different kinds are never equal
func (r Result) Equal(o Result) bool {
	if r.kind != o.kind || len(r.values) != len(o.values) {
		return false
	}

	if r.kind == Cycle && len(r.values) > 0 {
		// drop the repeated closing node before comparing rotations
		return traverse.RotationEqual(r.values[1:], o.values[1:])
	}

	for i := range r.values {
		if r.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// String formats r the way Parse reads it: walks are joined by "->", lines by
// newlines and other collections by spaces
func (r Result) String() string {
	switch {
	case len(r.values) == 0:
		return ""
	case r.kind == Single:
		return r.values[0]
	case r.kind == Cycle || r.kind == Path:
		return strings.Join(r.values, "->")
	case r.kind == Lines:
		return strings.Join(r.values, "\n")
	default:
		return strings.Join(r.values, " ")
	}
}

// MarshalJSON writes r as {"kind": ..., "values": [...]}
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   string   `json:"kind"`
		Values []string `json:"values"`
	}{r.kind.String(), r.values})
}
