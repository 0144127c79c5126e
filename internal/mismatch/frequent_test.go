package mismatch

import (
	"reflect"
	"testing"
)

func TestFrequentWords(t *testing.T) {
	words, count, err := FrequentWords("ACGTTGCATGTCGCATGATGCATGAGAGCT", 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"ATGC", "ATGT", "GATG"}; !reflect.DeepEqual(words, want) {
		t.Errorf("FrequentWords() = %v, want %v", words, want)
	}
	if count != 5 {
		t.Errorf("FrequentWords() count = %d, want 5", count)
	}
}

func TestFrequentWords_shortText(t *testing.T) {
	for _, find := range []func(string, int, int) ([]string, int, error){FrequentWords, FrequentWordsWithReverseComplements} {
		words, count, err := find("ACG", 4, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(words) != 0 || count != 0 {
			t.Errorf("FrequentWords(ACG, k=4) = %v, %d, want no words and 0", words, count)
		}
	}
}

func TestFrequentWordsWithReverseComplements(t *testing.T) {
	type args struct {
		text string
		k    int
		d    int
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{"homopolymer", args{"AAA", 2, 1}, []string{"AT", "TA"}},
		{"two mismatches", args{"AGTCAGTC", 4, 2}, []string{"AATT", "GGCC"}},
		{"exact", args{"AATTAATTGGTAGGTAGGTA", 4, 0}, []string{"AATT"}},
		{"whole text", args{"AAT", 3, 0}, []string{"AAT", "ATT"}},
		{"short k", args{"TAGCG", 2, 1}, []string{"CA", "CC", "GG", "TG"}},
		{"textbook", args{"ACGTTGCATGTCGCATGATGCATGAGAGCT", 4, 1}, []string{"ACAT", "ATGT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := FrequentWordsWithReverseComplements(tt.args.text, tt.args.k, tt.args.d)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FrequentWordsWithReverseComplements() = %v, want %v", got, tt.want)
			}
		})
	}
}
