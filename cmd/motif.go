package cmd

import (
	"strconv"
	"strings"

	"github.com/ankitson/compbio/internal/io"
	"github.com/ankitson/compbio/internal/motif"
	"github.com/ankitson/compbio/internal/result"
	"github.com/spf13/cobra"
)

// motifCmd groups the motif searches. Sequences come from arguments or --in
var motifCmd = &cobra.Command{
	Use:   "motif",
	Short: "Find motifs shared by a set of sequences",
	Long: `Find short patterns shared by a set of sequences, one per argument or
one per FASTA entry / line of --in.

enumerate and median are exhaustive; greedy, randomized and gibbs build
position profiles from candidate motifs. randomized and gibbs are seeded from
motif.seed in the settings (0 for a clock seed).`,
	SuggestionsMinimumDistance: 2,
}

var enumerateCmd = &cobra.Command{
	Use:     "enumerate [sequence...]",
	Short:   "Find every k-mer occurring with at most d mismatches in all sequences",
	Example: "  compbio motif enumerate ATTTGGC TGCCTTA CGGTATC GAAAATT -k 3 -d 1",
	Run:     runEnumerate,
}

var medianCmd = &cobra.Command{
	Use:     "median [sequence...]",
	Short:   "Find every k-mer minimizing the total distance to the sequences",
	Example: "  compbio motif median AAATTGACGCAT GACGACCACGTT CGTCAGCGCCTG GCTGAGCACCGG AGTTCGGGACAG -k 3",
	Run:     runMedian,
}

var mostProbableCmd = &cobra.Command{
	Use:   "most-probable [sequence] --matrix profile.txt",
	Short: "Find the most probable k-mer of a sequence under a profile",
	Long: `Find the first k-mer of a sequence with the highest probability under a
profile. The profile file has four lines of k probabilities, for A, C, G and T.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMostProbable,
}

var greedyCmd = &cobra.Command{
	Use:     "greedy [sequence...]",
	Short:   "Greedy profile motif search",
	Example: "  compbio motif greedy GGCGTTCAGGCA AAGAATCAGTCA CAAGGAGTTCGC CACGTCAATCAC CAATAATATTCG -k 3",
	Run:     runGreedy,
}

var randomizedCmd = &cobra.Command{
	Use:   "randomized [sequence...]",
	Short: "Randomized motif search with restarts",
	Run:   runRandomized,
}

var gibbsCmd = &cobra.Command{
	Use:   "gibbs [sequence...]",
	Short: "Gibbs sampling motif search",
	Run:   runGibbs,
}

var scoreCmd = &cobra.Command{
	Use:   "score [motif...]",
	Short: "Score a motif collection by its mismatches with the consensus",
	Long: `Score a motif collection by the number of bases that disagree with the
consensus base of their column. With --entropy, print the summed column
entropy of the profile instead.`,
	Run: runScore,
}

func init() {
	for _, c := range []*cobra.Command{enumerateCmd, medianCmd, mostProbableCmd, greedyCmd, randomizedCmd, gibbsCmd} {
		c.Flags().IntP("k", "k", 0, "motif length (default from settings)")
	}
	enumerateCmd.Flags().IntP("d", "d", 0, "maximum mismatches (default from settings)")
	for _, c := range []*cobra.Command{greedyCmd, randomizedCmd, gibbsCmd} {
		c.Flags().Bool("pseudo", false, "add a pseudo-count of 1 to the profiles (default from settings)")
	}
	randomizedCmd.Flags().IntP("iterations", "n", 0, "random restarts (default from settings)")
	gibbsCmd.Flags().IntP("iterations", "n", 0, "sampling steps (default from settings)")
	mostProbableCmd.Flags().StringP("matrix", "m", "", "profile file, four rows of probabilities for A, C, G, T")
	mostProbableCmd.MarkFlagRequired("matrix")
	scoreCmd.Flags().Bool("entropy", false, "print the entropy score instead")

	motifCmd.AddCommand(enumerateCmd, medianCmd, mostProbableCmd, greedyCmd, randomizedCmd, gibbsCmd, scoreCmd)
	RootCmd.AddCommand(motifCmd)
}

func runEnumerate(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)
	d := distance(cmd, c)

	motifs, err := motif.Enumerate(sequences(cmd, fs, args), k, d, c.Workers)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSet(motifs), nil)
}

func runMedian(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)

	medians, err := motif.MedianStrings(sequences(cmd, fs, args), k, c.Workers)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSet(medians), nil)
}

func runMostProbable(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	path, _ := cmd.Flags().GetString("matrix")
	p := readProfile(path)
	k := intFlag(cmd.Flags(), "k", p.K())

	kmer, err := motif.ProfileMostProbable(genome(cmd, fs, args), p, k)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSingle(kmer), nil)
}

func runGreedy(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)
	pseudo := boolFlag(cmd.Flags(), "pseudo", c.Motif.Pseudocounts)

	r, err := motif.Greedy(sequences(cmd, fs, args), k, pseudo, c.Workers)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewList(r.Motifs), &r.Score)
}

func runRandomized(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)
	pseudo := boolFlag(cmd.Flags(), "pseudo", c.Motif.Pseudocounts)
	iterations := intFlag(cmd.Flags(), "iterations", c.Motif.Iterations)

	r, err := motif.Randomized(sequences(cmd, fs, args), k, pseudo, iterations, c.Rand())
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewList(r.Motifs), &r.Score)
}

func runGibbs(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)
	pseudo := boolFlag(cmd.Flags(), "pseudo", c.Motif.Pseudocounts)
	iterations := intFlag(cmd.Flags(), "iterations", c.Motif.GibbsIterations)

	r, err := motif.Gibbs(sequences(cmd, fs, args), k, pseudo, iterations, c.Rand())
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewList(r.Motifs), &r.Score)
}

func runScore(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	motifs := sequences(cmd, fs, args)

	if boolFlag(cmd.Flags(), "entropy", false) {
		p, err := motif.NewProfile(motifs, false)
		if err != nil {
			stderr.Fatalln(err)
		}
		h := motif.EntropyScore(p)
		emit(cmd, fs, c, result.NewSingle(strconv.FormatFloat(h, 'f', 4, 64)), nil)
		return
	}

	score, err := motif.Score(motifs)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSingle(strconv.Itoa(score)), nil)
}

// readProfile parses four whitespace separated rows of probabilities
func readProfile(path string) *motif.Profile {
	text, err := io.ReadText(path)
	if err != nil {
		stderr.Fatalln(err)
	}

	var rows [][]float64
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			if row[i], err = strconv.ParseFloat(f, 64); err != nil {
				stderr.Fatalf("failed to parse profile %s: %v", path, err)
			}
		}
		rows = append(rows, row)
	}

	p, err := motif.ProfileFromRows(rows)
	if err != nil {
		stderr.Fatalf("failed to parse profile %s: %v", path, err)
	}
	return p
}
