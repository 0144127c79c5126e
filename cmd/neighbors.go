package cmd

import (
	"github.com/ankitson/compbio/config"
	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/mismatch"
	"github.com/ankitson/compbio/internal/result"
	"github.com/spf13/cobra"
)

// neighborsCmd is for generating mismatch neighborhoods
var neighborsCmd = &cobra.Command{
	Use:   "neighbors <pattern>",
	Short: "List every string within d mismatches of a pattern",
	Long: `List, sorted, every string of the pattern's length that is at most d
mismatches from it, the pattern included. With --rc the neighborhood of the
reverse complement is added too.`,
	Example:                    "  compbio neighbors ACG -d 1",
	Args:                       cobra.ExactArgs(1),
	Run:                        runNeighbors,
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"neighbours", "nbrs"},
}

// frequentMismatchCmd is for the most frequent words with mismatches
var frequentMismatchCmd = &cobra.Command{
	Use:   "frequent-mismatch [genome]",
	Short: "Find the most frequent k-mers allowing d mismatches",
	Long: `Find the k-mers with the most occurrences in the genome when each
occurrence may have up to d mismatches. The k-mers need not occur in the
genome themselves. With --rc, occurrences of the reverse complement count too.`,
	Example: "  compbio frequent-mismatch ACGTTGCATGTCGCATGATGCATGAGAGCT -k 4 -d 1",
	Args:    cobra.MaximumNArgs(1),
	Run:     runFrequentMismatch,
}

func init() {
	for _, c := range []*cobra.Command{neighborsCmd, frequentMismatchCmd} {
		c.Flags().IntP("d", "d", 0, "maximum mismatches (default from settings)")
		c.Flags().Bool("rc", false, "include reverse complements")
	}
	frequentMismatchCmd.Flags().IntP("k", "k", 0, "k-mer length (default from settings)")

	RootCmd.AddCommand(neighborsCmd, frequentMismatchCmd)
}

// distance is the d flag, refused past config.MaxDistance
func distance(cmd *cobra.Command, c *config.Config) int {
	d := intFlag(cmd.Flags(), "d", c.Mismatch.MaxDistance)
	if d > config.MaxDistance {
		cmd.Help()
		stderr.Fatalf("d=%d is too large, neighborhoods are limited to %d mismatches", d, config.MaxDistance)
	}
	return d
}

func runNeighbors(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	d := distance(cmd, c)
	pattern := dna.Upper(args[0])

	find := mismatch.Neighborhood
	if boolFlag(cmd.Flags(), "rc", false) {
		find = mismatch.NeighborhoodWithReverseComplement
	}
	nbrs, err := find(pattern, d)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSet(nbrs), nil)
}

func runFrequentMismatch(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	d := distance(cmd, c)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)

	find := mismatch.FrequentWords
	if boolFlag(cmd.Flags(), "rc", false) {
		find = mismatch.FrequentWordsWithReverseComplements
	}
	words, count, err := find(genome(cmd, fs, args), k, d)
	if err != nil {
		stderr.Fatalln(err)
	}
	if c.Verbose {
		stderr.Printf("%d %d-mers occur %d times with up to %d mismatches", len(words), k, count, d)
	}
	emit(cmd, fs, c, result.NewSet(words), nil)
}
