package result

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestResult_Equal(t *testing.T) {
	type args struct {
		a Result
		b Result
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"single", args{NewSingle("GGCTTACCA"), Parse(Single, "GGCTTACCA\n")}, true},
		{"single differs", args{NewSingle("GGCTTACCA"), NewSingle("GGCTTACC")}, false},
		{"list order matters", args{NewList([]string{"ATG", "TGC"}), NewList([]string{"TGC", "ATG"})}, false},
		{"list", args{Ints(List, []int{1, 3, 9}), Parse(List, "1 3 9")}, true},
		{"set ignores order", args{NewSet([]string{"GATG", "ATGC", "ATGT"}), Parse(Set, "ATGC, ATGT, GATG")}, true},
		{"set ignores repeats", args{NewSet([]string{"A", "A", "C"}), NewSet([]string{"C", "A"})}, true},
		{"set differs", args{NewSet([]string{"A", "C"}), NewSet([]string{"A", "G"})}, false},
		{
			"cycle rotation",
			args{
				NewCycle([]string{"0", "3", "2", "6", "8", "7", "9", "6", "5", "4", "2", "1", "0"}),
				Parse(Cycle, "6->8->7->9->6->5->4->2->1->0->3->2->6"),
			},
			true,
		},
		{"cycle differs", args{Parse(Cycle, "1->2->3->1"), Parse(Cycle, "1->3->2->1")}, false},
		{"lines ignore order", args{NewLines([]string{"TCT: CTC CTA", "AAG: AGA AGA"}), Parse(Lines, "AAG: AGA AGA\nTCT: CTC CTA\n\n")}, true},
		{"lines keep edge order", args{NewLines([]string{"TCT: CTC CTA"}), Parse(Lines, "TCT: CTA CTC")}, false},
		{"path", args{NewPath([]string{"6", "7", "8"}), Parse(Path, "6->7->8\n")}, true},
		{"path is not rotated", args{NewPath([]string{"1", "2", "1"}), Parse(Path, "2->1->2")}, false},
		{"kinds differ", args{NewList([]string{"A"}), NewSet([]string{"A"})}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.a.Equal(tt.args.b); got != tt.want {
				t.Errorf("Result.Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult_String(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want string
	}{
		{"single", NewSingle("ACGT"), "ACGT"},
		{"list", Ints(List, []int{11, 24}), "11 24"},
		{"set sorted", NewSet([]string{"TTT", "ATA", "GTT", "ATT"}), "ATA ATT GTT TTT"},
		{"cycle", NewCycle([]string{"1", "2", "1"}), "1->2->1"},
		{"lines", NewLines([]string{"B: A", "A: B C"}), "A: B C\nB: A"},
		{"path", NewPath([]string{"6", "7", "8", "9"}), "6->7->8->9"},
		{"zero value", Result{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("Result.String() = %v, want %v", got, tt.want)
			}
			if tt.r.kind != Single && !Parse(tt.r.kind, tt.r.String()).Equal(tt.r) {
				t.Errorf("Parse(%v) != %v", tt.r.String(), tt.r)
			}
		})
	}
}

func TestResult_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewSet([]string{"C", "A"}))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"kind":"set","values":["A","C"]}`; string(b) != want {
		t.Errorf("json.Marshal() = %s, want %s", b, want)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Single, List, Set, Cycle, Lines, Path} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%s) = %v, %v", k, got, err)
		}
	}
	if _, err := ParseKind("bag"); err == nil {
		t.Error("ParseKind(bag) expected an error")
	}
}

func TestNew(t *testing.T) {
	if got := New(Single, nil).Values(); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("New(Single, nil) = %v", got)
	}
	if got := New(List, []string{"b", "a"}).Values(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("New(List) = %v", got)
	}
}
