package cmd

import (
	"fmt"
	"strconv"

	"github.com/ankitson/compbio/internal/assemble"
	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/result"
	"github.com/spf13/cobra"
)

// seqCmd groups the single sequence utilities
var seqCmd = &cobra.Command{
	Use:                        "seq",
	Short:                      "Sequence utilities: reverse complements, distances and k-mer counts",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"sequence"},
}

var revcompCmd = &cobra.Command{
	Use:                        "revcomp [sequence]",
	Short:                      "Reverse complement a sequence",
	Example:                    "  compbio seq revcomp AAAACCCGGT",
	Args:                       cobra.MaximumNArgs(1),
	Run:                        runRevcomp,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"rc"},
}

var complementCmd = &cobra.Command{
	Use:   "complement [sequence]",
	Short: "Complement a sequence without reversing it",
	Args:  cobra.MaximumNArgs(1),
	Run:   runComplement,
}

var hammingCmd = &cobra.Command{
	Use:     "hamming <a> <b>",
	Short:   "Count the mismatches between two sequences",
	Long:    "Count the mismatches between two sequences. Each base one sequence has past the end of the other counts as a mismatch.",
	Example: "  compbio seq hamming GGGCCGTTGGT GGACCGTTGAC",
	Args:    cobra.ExactArgs(2),
	Run:     runHamming,
}

var freqCmd = &cobra.Command{
	Use:   "freq [sequence]",
	Short: "Count every k-mer of a sequence",
	Long: `Count every overlapping k-mer of a sequence. Counts are printed as
KMER:COUNT in k-mer order. With --canonical, each k-mer is counted
together with its reverse complement.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFreq,
}

var frequentCmd = &cobra.Command{
	Use:     "frequent [sequence]",
	Short:   "Find the most frequent k-mers of a sequence",
	Example: "  compbio seq frequent ACGTTGCATGTCGCATGATGCATGAGAGCT -k 4",
	Args:    cobra.MaximumNArgs(1),
	Run:     runFrequent,
}

var compositionCmd = &cobra.Command{
	Use:     "composition [sequence]",
	Short:   "List the overlapping k-mers of a sequence in order",
	Example: "  compbio seq composition CAATCCAAC -k 5",
	Args:    cobra.MaximumNArgs(1),
	Run:     runComposition,
}

var baseCountsCmd = &cobra.Command{
	Use:   "base-counts [sequence]",
	Short: "Count one base in each of a number of near-equal fragments of a genome",
	Args:  cobra.MaximumNArgs(1),
	Run:   runBaseCounts,
}

func init() {
	for _, c := range []*cobra.Command{freqCmd, frequentCmd, compositionCmd} {
		c.Flags().IntP("k", "k", 0, "k-mer length (default from settings)")
	}
	freqCmd.Flags().Bool("canonical", false, "merge the counts of reverse complement pairs")
	baseCountsCmd.Flags().String("base", "G", "base to count")
	baseCountsCmd.Flags().Int("parts", 46, "number of fragments")

	seqCmd.AddCommand(revcompCmd, complementCmd, hammingCmd, freqCmd, frequentCmd, compositionCmd, baseCountsCmd)
	RootCmd.AddCommand(seqCmd)
}

func runRevcomp(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	rc, err := dna.ReverseComplement(genome(cmd, fs, args))
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSingle(rc), nil)
}

func runComplement(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	comp, err := dna.Complement(genome(cmd, fs, args))
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSingle(comp), nil)
}

func runHamming(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	d := dna.HammingDistance(dna.Upper(args[0]), dna.Upper(args[1]))
	emit(cmd, fs, c, result.NewSingle(strconv.Itoa(d)), nil)
}

func runFreq(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)

	freqs, err := dna.KmerFrequencies(genome(cmd, fs, args), k)
	if err != nil {
		stderr.Fatalln(err)
	}
	if boolFlag(cmd.Flags(), "canonical", false) {
		if freqs, err = dna.CanonicalFrequencies(freqs); err != nil {
			stderr.Fatalln(err)
		}
	}

	var counts []string
	for _, kmer := range dna.SortedKeys(freqs) {
		counts = append(counts, fmt.Sprintf("%s:%d", kmer, freqs[kmer]))
	}
	emit(cmd, fs, c, result.NewList(counts), nil)
}

func runFrequent(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)

	words, count, err := dna.FrequentWords(genome(cmd, fs, args), k)
	if err != nil {
		stderr.Fatalln(err)
	}
	if c.Verbose {
		stderr.Printf("%d %d-mers occur %d times", len(words), k, count)
	}
	emit(cmd, fs, c, result.NewSet(words), nil)
}

func runComposition(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)

	kmers, err := assemble.Composition(genome(cmd, fs, args), k)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewList(kmers), nil)
}

func runBaseCounts(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	base, _ := cmd.Flags().GetString("base")
	parts := intFlag(cmd.Flags(), "parts", 46)
	if len(base) != 1 {
		cmd.Help()
		stderr.Fatalf("--base must be a single base, got %q", base)
	}

	counts, err := dna.BaseCounts(genome(cmd, fs, args), dna.Upper(base)[0], parts)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.Ints(result.List, counts), nil)
}
