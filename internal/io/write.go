package io

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ankitson/compbio/internal/result"
)

// Out is the JSON document written for a result
type Out struct {
	// unix
	Time int64 `json:"time"`

	// Command that produced the result, e.g. "assemble kmers"
	Command string `json:"command"`

	// Result of the command
	Result result.Result `json:"result"`

	// Score of a motif search, when there is one
	Score *int `json:"score,omitempty"`
}

// Format renders r as text (the default) or, for "json", as an Out document
func Format(format, command string, r result.Result, score *int) ([]byte, error) {
	switch format {
	case "", "text":
		var b strings.Builder
		b.WriteString(r.String())
		b.WriteByte('\n')
		if score != nil {
			fmt.Fprintf(&b, "score: %d\n", *score)
		}
		return []byte(b.String()), nil
	case "json":
		out := Out{
			Time:    time.Now().Unix(),
			Command: command,
			Result:  r,
			Score:   score,
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize the output: %w", err)
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown output format %q, expected text or json", format)
	}
}

// Write formats r and writes it to path, or to stdout if path is empty or "-".
// A path ending in .zst is zstd compressed
func Write(path, format, command string, r result.Result, score *int) error {
	b, err := Format(format, command, r, score)
	if err != nil {
		return err
	}

	if path == "" || path == Stdin {
		_, err = os.Stdout.Write(b)
		return err
	}

	if strings.HasSuffix(path, ".zst") {
		if b, err = compress(b); err != nil {
			return fmt.Errorf("failed to compress output for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, b, 0666); err != nil {
		return fmt.Errorf("failed to write the result to %s: %w", path, err)
	}
	return nil
}

// Check compares r with the expected answer stored at path, parsed as the same kind
func Check(path string, r result.Result) error {
	text, err := ReadText(path)
	if err != nil {
		return err
	}

	want := result.Parse(r.Kind(), text)
	if !r.Equal(want) {
		return fmt.Errorf("result does not match %s:\n\tgot  %s\n\twant %s", path, r, want)
	}
	return nil
}
