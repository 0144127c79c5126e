package cmd

import (
	"github.com/ankitson/compbio/internal/assemble"
	"github.com/ankitson/compbio/internal/result"
	"github.com/ankitson/compbio/internal/traverse"
	"github.com/spf13/cobra"
)

// assembleCmd is for walking graphs and reconstructing sequences
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Find Eulerian walks and reconstruct sequences from k-mers",
	Long: `Find Eulerian cycles and paths through graphs and reconstruct the
sequences they spell.

Graphs are read from --in (or stdin) as adjacency lists, one
"FROM: TO TO ..." or "FROM -> TO,TO,..." line per node.`,
	SuggestionsMinimumDistance: 3,
	Aliases:                    []string{"reconstruct"},
}

var cycleCmd = &cobra.Command{
	Use:     "cycle",
	Short:   "Find an Eulerian cycle through a balanced, connected graph",
	Example: "  compbio assemble cycle -i graph.txt --start 6",
	Args:    cobra.NoArgs,
	Run:     runCycle,
}

var pathCmd = &cobra.Command{
	Use:     "path",
	Short:   "Find an Eulerian path through a graph",
	Example: "  compbio assemble path -i graph.txt",
	Args:    cobra.NoArgs,
	Run:     runPath,
}

var spellCmd = &cobra.Command{
	Use:     "spell [kmer...]",
	Short:   "Spell the sequence of a path of consecutively overlapping k-mers",
	Example: "  compbio assemble spell ACCGA CCGAA CGAAG GAAGC AAGCT",
	Run:     runSpell,
	Aliases: []string{"path-to-string"},
}

var kmersCmd = &cobra.Command{
	Use:   "kmers [kmer...]",
	Short: "Reconstruct a sequence from its k-mer composition",
	Long: `Reconstruct a sequence from its k-mer composition by spelling an
Eulerian path through the k-mers' de Bruijn graph.`,
	Example: "  compbio assemble kmers CTTA ACCA TACC GGCT GCTT TTAC",
	Run:     runKmers,
}

func init() {
	cycleCmd.Flags().String("start", "", "node to start the cycle from (default the first node)")

	assembleCmd.AddCommand(cycleCmd, pathCmd, spellCmd, kmersCmd)
	RootCmd.AddCommand(assembleCmd)
}

func runCycle(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	start, _ := cmd.Flags().GetString("start")

	cycle, err := traverse.EulerianCycle(readGraph(fs), start)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewCycle(cycle), nil)
}

func runPath(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	path, err := traverse.EulerianPath(readGraph(fs))
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewPath(path), nil)
}

func runSpell(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	s, err := assemble.PathToString(sequences(cmd, fs, args))
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSingle(s), nil)
}

func runKmers(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	kmers := sequences(cmd, fs, args)
	if c.Verbose {
		stderr.Printf("reconstructing from %d k-mers", len(kmers))
	}

	s, err := assemble.StringFromKmers(kmers)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, result.NewSingle(s), nil)
}
