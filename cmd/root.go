// Package cmd is for command line interactions with the compbio application
package cmd

import (
	"log"
	"os"

	"github.com/ankitson/compbio/config"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// profiler is the running pkg/profile session, if --profile was set
	profiler interface{ Stop() }
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "compbio",
	Short: "Count, match, assemble and search DNA sequences",
	Long: `Sequence algorithms from genome analysis and assembly:

k-mer counting, exact and approximate pattern matching, clump finding,
mismatch neighborhoods, de Bruijn and overlap graphs, Eulerian paths and
string reconstruction, motif searches and GC skew.

Sequences are read from --in (FASTA or plain text, optionally .zst
compressed, "-" for stdin) or from positional arguments.`,
	Version:          "0.1.0",
	PersistentPreRun: startProfile,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalln(err)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringP("in", "i", "", `input file: FASTA or plain text, .zst compressed or "-" for stdin`)
	flags.StringP("out", "o", "", "output file name (default stdout)")
	flags.StringP("settings", "s", config.SettingsFile, "settings file")
	flags.BoolP("verbose", "v", false, "whether to log progress to stderr")
	flags.IntP("workers", "w", 0, "goroutines for the parallel searches (default from settings)")
	flags.StringP("format", "f", "", "output format: text or json (default from settings)")
	flags.StringP("expect", "e", "", "file with the expected answer; exit non-zero on a mismatch")
	flags.String("profile", "", "write a cpu or mem profile to the working directory")

	viper.BindPFlag("settings", flags.Lookup("settings"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("output.format", flags.Lookup("format"))
	viper.BindPFlag("workers", flags.Lookup("workers"))
}

// startProfile starts CPU or memory profiling for the --profile flag
func startProfile(cmd *cobra.Command, args []string) {
	mode, _ := cmd.Flags().GetString("profile")
	switch mode {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		cmd.Help()
		stderr.Fatalf("unknown profile %q, expected cpu or mem", mode)
	}
}
