package cmd

import (
	"github.com/ankitson/compbio/internal/result"
	"github.com/ankitson/compbio/internal/skew"
	"github.com/spf13/cobra"
)

// skewCmd is for the G - C skew of a genome
var skewCmd = &cobra.Command{
	Use:   "skew",
	Short: "Compute the G - C skew of a genome",
	Long: `Compute the running difference between the G and C counts of a genome.
The skew is lowest near the replication origin.`,
	SuggestionsMinimumDistance: 2,
}

var seriesCmd = &cobra.Command{
	Use:     "series [genome]",
	Short:   "Print the skew after every base",
	Example: "  compbio skew series GAGCCACCGCGATA --zero",
	Args:    cobra.MaximumNArgs(1),
	Run:     runSeries,
}

var minSkewCmd = &cobra.Command{
	Use:     "min [genome]",
	Short:   "Find the 1-based positions where the skew is smallest",
	Example: "  compbio skew min -i Salmonella_enterica.fa",
	Args:    cobra.MaximumNArgs(1),
	Run:     runMinSkew,
	Aliases: []string{"minimum"},
}

func init() {
	seriesCmd.Flags().Bool("zero", false, "start with the skew of the empty prefix, 0")

	skewCmd.AddCommand(seriesCmd, minSkewCmd)
	RootCmd.AddCommand(skewCmd)
}

func runSeries(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	values, err := skew.Values(genome(cmd, fs, args), boolFlag(cmd.Flags(), "zero", false))
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.Ints(result.List, values), nil)
}

func runMinSkew(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	g := genome(cmd, fs, args)
	if c.Verbose {
		stderr.Printf("computing the skew of %d bp", len(g))
	}

	positions, err := skew.MinimumPositions(g)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.Ints(result.List, positions), nil)
}
