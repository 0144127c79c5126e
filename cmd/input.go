package cmd

import (
	"strings"

	"github.com/ankitson/compbio/config"
	"github.com/ankitson/compbio/internal/dna"
	"github.com/ankitson/compbio/internal/io"
	"github.com/ankitson/compbio/internal/result"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags contains parsed cobra Flags like "in", "out", "expect" that are used by every command.
type Flags struct {
	// the name of the file to read input from
	in string

	// the name of the file to write the output to, stdout if empty
	out string

	// the name of a file with the expected answer
	expect string

	// text or json
	format string
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object
// along with the Config they're resolved against
func parseCmdFlags(cmd *cobra.Command) (*Flags, *config.Config) {
	c := config.New()
	fs := &Flags{format: c.Output.Format}

	var err error
	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		cmd.Help()
		stderr.Fatalf("failed to parse in flag: %v", err)
	}
	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		cmd.Help()
		stderr.Fatalf("failed to parse out flag: %v", err)
	}
	if fs.expect, err = cmd.Flags().GetString("expect"); err != nil {
		cmd.Help()
		stderr.Fatalf("failed to parse expect flag: %v", err)
	}

	if c.Verbose {
		stderr.Printf("%s: in=%q out=%q workers=%d", commandName(cmd), fs.in, fs.out, c.Workers)
	}
	return fs, c
}

// intFlag is the value of a command's int flag if it was set on the command
// line, otherwise fallback (usually from the Config)
func intFlag(flags *pflag.FlagSet, name string, fallback int) int {
	if f := flags.Lookup(name); f == nil || !f.Changed {
		return fallback
	}
	v, err := flags.GetInt(name)
	if err != nil {
		stderr.Fatalf("failed to parse %s flag: %v", name, err)
	}
	return v
}

// boolFlag is intFlag for bool flags
func boolFlag(flags *pflag.FlagSet, name string, fallback bool) bool {
	if f := flags.Lookup(name); f == nil || !f.Changed {
		return fallback
	}
	v, err := flags.GetBool(name)
	if err != nil {
		stderr.Fatalf("failed to parse %s flag: %v", name, err)
	}
	return v
}

// genome is the sequence in the first argument or, without one, the genome in --in
func genome(cmd *cobra.Command, fs *Flags, args []string) string {
	if len(args) > 0 {
		g := dna.Upper(args[0])
		if err := dna.Validate(g); err != nil {
			stderr.Fatalln(err)
		}
		return g
	}

	if fs.in == "" {
		cmd.Help()
		stderr.Fatalln("no sequence: pass one as an argument or a file with --in")
	}
	g, err := io.ReadGenome(fs.in)
	if err != nil {
		stderr.Fatalln(err)
	}
	return g
}

// sequences are the arguments or, without any, every sequence in --in
func sequences(cmd *cobra.Command, fs *Flags, args []string) []string {
	if len(args) > 0 {
		seqs := make([]string, len(args))
		for i, a := range args {
			seqs[i] = dna.Upper(a)
		}
		return seqs
	}

	if fs.in == "" {
		cmd.Help()
		stderr.Fatalln("no sequences: pass them as arguments or a file with --in")
	}
	records, err := io.ReadSequences(fs.in)
	if err != nil {
		stderr.Fatalln(err)
	}
	return io.Seqs(records)
}

// emit writes the result and, with --expect, checks it against the expected answer
func emit(cmd *cobra.Command, fs *Flags, c *config.Config, r result.Result, score *int) {
	if err := io.Write(fs.out, fs.format, commandName(cmd), r, score); err != nil {
		stderr.Fatalln(err)
	}

	if fs.expect == "" {
		return
	}
	if err := io.Check(fs.expect, r); err != nil {
		stderr.Fatalln(err)
	}
	if c.Verbose {
		stderr.Printf("result matches %s", fs.expect)
	}
}

// commandName is the command path without the binary, e.g. "motif greedy"
func commandName(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), RootCmd.Name()+" ")
}
