package dna

// KmerFrequencies counts every k-mer of text in a single sliding-window pass.
// The counts sum to len(text)-k+1 and the map is empty if k > len(text)
func KmerFrequencies(text string, k int) (map[string]int, error) {
	if err := CheckK(k); err != nil {
		return nil, err
	}
	if err := Validate(text); err != nil {
		return nil, err
	}

	n := len(text) - k + 1
	if n < 1 {
		return map[string]int{}, nil
	}

	freqs := make(map[string]int, n)
	for i := 0; i < n; i++ {
		freqs[text[i:i+k]]++
	}
	return freqs, nil
}

// FrequentWords returns every k-mer of text that occurs the maximum number of times, sorted
func FrequentWords(text string, k int) ([]string, int, error) {
	freqs, err := KmerFrequencies(text, k)
	if err != nil {
		return nil, 0, err
	}

	max := 0
	for _, count := range freqs {
		if count > max {
			max = count
		}
	}

	var words []string
	for _, kmer := range SortedKeys(freqs) {
		if freqs[kmer] == max {
			words = append(words, kmer)
		}
	}
	return words, max, nil
}

// CanonicalFrequencies folds the counts of each k-mer and its reverse complement
// onto the canonical member of the pair. Reverse-complement palindromes keep their count
func CanonicalFrequencies(freqs map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(freqs))
	for kmer, count := range freqs {
		canon, err := Canonical(kmer)
		if err != nil {
			return nil, err
		}
		out[canon] += count
	}
	return out, nil
}

// BaseCounts splits genome into parts near-equal fragments (the first
// len(genome)%parts fragments are one longer) and counts base in each
func BaseCounts(genome string, base byte, parts int) ([]int, error) {
	if _, ok := Index(base); !ok {
		return nil, &SymbolError{Symbol: base, Pos: 0}
	}
	if parts <= 0 {
		return nil, &ParamError{Name: "parts", Value: parts, Reason: "must be positive"}
	}
	if err := Validate(genome); err != nil {
		return nil, err
	}

	size, extra := len(genome)/parts, len(genome)%parts
	counts := make([]int, parts)
	start := 0
	for p := 0; p < parts; p++ {
		end := start + size
		if p < extra {
			end++
		}
		for i := start; i < end; i++ {
			if genome[i] == base {
				counts[p]++
			}
		}
		start = end
	}
	return counts, nil
}
