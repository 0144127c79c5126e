package cmd

import (
	"strconv"

	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/match"
	"github.com/ankitson/compbio/internal/result"
	"github.com/spf13/cobra"
)

// findCmd is for finding patterns in a genome
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find exact or approximate occurrences of a pattern, or clumps of k-mers",
	SuggestionsMinimumDistance: 2,
	Aliases:                    []string{"match", "search"},
}

var occurrencesCmd = &cobra.Command{
	Use:     "occurrences <pattern> [genome]",
	Short:   "Find the 0-based start of every exact occurrence of a pattern",
	Example: "  compbio find occurrences ATAT GATATATGCATATACTT",
	Args:    cobra.RangeArgs(1, 2),
	Run:     runOccurrences,
	Aliases: []string{"exact"},
}

var approxCmd = &cobra.Command{
	Use:   "approx <pattern> [genome]",
	Short: "Find every occurrence of a pattern with at most d mismatches",
	Long: `Find the 0-based start of every window of the genome within d mismatches
of the pattern. With --count, print only the number of such windows.`,
	Example: "  compbio find approx ATTCTGGA -d 3 -i genome.txt",
	Args:    cobra.RangeArgs(1, 2),
	Run:     runApprox,
}

var clumpsCmd = &cobra.Command{
	Use:   "clumps [genome]",
	Short: "Find k-mers forming (window, min-count) clumps",
	Long: `Find every k-mer that occurs at least min-count times within some
window-length stretch of the genome. A genome shorter than the window has no clumps.`,
	Example: "  compbio find clumps -i E_coli.fa -k 9 --window 500 --min-count 3",
	Args:    cobra.MaximumNArgs(1),
	Run:     runClumps,
}

func init() {
	approxCmd.Flags().IntP("d", "d", 0, "maximum mismatches (default from settings)")
	approxCmd.Flags().Bool("count", false, "print the number of occurrences instead")

	clumpsCmd.Flags().IntP("k", "k", 0, "k-mer length (default from settings)")
	clumpsCmd.Flags().IntP("window", "L", 0, "window length (default from settings)")
	clumpsCmd.Flags().IntP("min-count", "t", 0, "occurrences that make a clump (default from settings)")

	findCmd.AddCommand(occurrencesCmd, approxCmd, clumpsCmd)
	RootCmd.AddCommand(findCmd)
}

func runOccurrences(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	pattern := dna.Upper(args[0])
	starts := match.Occurrences(genome(cmd, fs, args[1:]), pattern)
	emit(cmd, fs, c, result.Ints(result.List, starts), nil)
}

func runApprox(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	pattern := dna.Upper(args[0])
	d := intFlag(cmd.Flags(), "d", c.Mismatch.MaxDistance)

	starts, err := match.ApproxOccurrences(genome(cmd, fs, args[1:]), pattern, d)
	if err != nil {
		stderr.Fatalln(err)
	}
	if boolFlag(cmd.Flags(), "count", false) {
		emit(cmd, fs, c, result.NewSingle(strconv.Itoa(len(starts))), nil)
		return
	}
	emit(cmd, fs, c, result.Ints(result.List, starts), nil)
}

func runClumps(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)
	window := intFlag(cmd.Flags(), "window", c.Clump.Window)
	minCount := intFlag(cmd.Flags(), "min-count", c.Clump.MinCount)

	g := genome(cmd, fs, args)
	if c.Verbose {
		stderr.Printf("scanning %d bp for %d-mers occurring %d times in %d bp", len(g), k, minCount, window)
	}

	kmers, err := match.Clumps(g, k, window, minCount)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSet(kmers), nil)
}
