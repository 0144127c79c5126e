package cmd

import (
	"bytes"
	"strings"

	"github.com/ankitson/compbio/internal/assemble"
	"github.com/ankitson/compbio/internal/graph"
	"github.com/ankitson/compbio/internal/io"
	"github.com/ankitson/compbio/internal/result"
	"github.com/spf13/cobra"
)

// graphCmd groups the graph builders
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build de Bruijn and overlap graphs",
	Long: `Build de Bruijn and overlap graphs and print them as adjacency lists,
one "FROM: TO TO ..." line per node with outgoing edges, or with --dot in the
Graphviz DOT language.`,
	SuggestionsMinimumDistance: 2,
}

var debruijnCmd = &cobra.Command{
	Use:     "debruijn [genome]",
	Short:   "Build the de Bruijn graph of a genome's k-mers",
	Example: "  compbio graph debruijn AAGATTCTCTAAGA -k 4",
	Args:    cobra.MaximumNArgs(1),
	Run:     runDeBruijn,
	Aliases: []string{"dbg"},
}

var overlapCmd = &cobra.Command{
	Use:     "overlap [read...]",
	Short:   "Build the overlap graph of a set of equal length reads",
	Example: "  compbio graph overlap ATGCG GCATG CATGC AGGCA GGCAT GGCAC",
	Run:     runOverlap,
}

var kmersGraphCmd = &cobra.Command{
	Use:   "kmers [kmer...]",
	Short: "Build the de Bruijn graph of a collection of k-mers",
	Long: `Build the de Bruijn graph of a collection of k-mers: one edge per k-mer
from its prefix to its suffix. Repeated k-mers are repeated edges.`,
	Example: "  compbio graph kmers GAGG CAGG GGGG GGGA CAGG AGGG GGAG",
	Run:     runKmersGraph,
}

func init() {
	debruijnCmd.Flags().IntP("k", "k", 0, "k-mer length (default from settings)")
	for _, c := range []*cobra.Command{debruijnCmd, overlapCmd, kmersGraphCmd} {
		c.Flags().Bool("dot", false, "print the graph in the Graphviz DOT language")
	}

	graphCmd.AddCommand(debruijnCmd, overlapCmd, kmersGraphCmd)
	RootCmd.AddCommand(graphCmd)
}

func runDeBruijn(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	k := intFlag(cmd.Flags(), "k", c.Kmer.K)

	g, err := assemble.DeBruijnFromString(genome(cmd, fs, args), k)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, graphResult(cmd, g), nil)
}

func runOverlap(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	g, err := assemble.OverlapGraph(sequences(cmd, fs, args))
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, graphResult(cmd, g), nil)
}

func runKmersGraph(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	g, err := assemble.DeBruijnFromKmers(sequences(cmd, fs, args), 0)
	if err != nil {
		stderr.Fatalln(err)
	}
	emit(cmd, fs, c, graphResult(cmd, g), nil)
}

// graphResult is the DOT text of g with --dot, otherwise its adjacency lines
// as a set, so an expected answer can list nodes in any order
func graphResult(cmd *cobra.Command, g *graph.Graph) result.Result {
	if boolFlag(cmd.Flags(), "dot", false) {
		dot, err := graph.DOT(g, "")
		if err != nil {
			stderr.Fatalln(err)
		}
		return result.NewSingle(dot)
	}

	var buf bytes.Buffer
	if err := graph.Format(&buf, g); err != nil {
		stderr.Fatalln(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	return result.NewLines(lines)
}

// readGraph parses the adjacency list in --in, or stdin
func readGraph(fs *Flags) *graph.Graph {
	path := fs.in
	if path == "" {
		path = io.Stdin
	}
	text, err := io.ReadText(path)
	if err != nil {
		stderr.Fatalln(err)
	}
	g, err := graph.Parse(strings.NewReader(text))
	if err != nil {
		stderr.Fatalf("failed to parse graph in %s: %v", path, err)
	}
	return g
}
