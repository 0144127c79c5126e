// Package io reads sequences and expected answers from disk or stdin, and
// writes results back out. Files ending in .zst are zstd compressed
package io

import (
	"bufio"
	"bytes"
	"fmt"
	goio "io"
	"log"
	"os"
	"strings"

	"github.com/ankitson/compbio/internal/dna"
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/klauspost/compress/zstd"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Stdin is the path that reads from standard input
const Stdin = "-"

// Record is one named input sequence
type Record struct {
	ID  string
	Seq string
}

// ReadText returns the whole (decompressed) contents of path
func ReadText(path string) (string, error) {
	r, closer, err := open(path)
	if err != nil {
		return "", err
	}
	defer closer()

	b, err := goio.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// ReadSequences reads every sequence in path. A FASTA file gives one record
// per entry; plain text gives one record per non-empty line. Sequences are
// upper-cased and checked for non-ACGT symbols
func ReadSequences(path string) ([]Record, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}

	var records []Record
	if isFASTA(text) {
		records, err = parseFASTA(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse FASTA %s: %w", path, err)
		}
	} else {
		for i, line := range strings.Split(text, "\n") {
			if line = dna.Upper(line); line != "" {
				records = append(records, Record{ID: fmt.Sprintf("line-%d", i+1), Seq: line})
			}
		}
	}

	for _, r := range records {
		if err := dna.Validate(r.Seq); err != nil {
			return nil, fmt.Errorf("sequence %s in %s: %w", r.ID, path, err)
		}
	}
	return records, nil
}

// ReadGenome reads a single sequence from path: the first FASTA entry, or all
// the lines of a plain text file joined together
func ReadGenome(path string) (string, error) {
	text, err := ReadText(path)
	if err != nil {
		return "", err
	}

	var genome string
	if isFASTA(text) {
		records, err := parseFASTA(text)
		if err != nil {
			return "", fmt.Errorf("failed to parse FASTA %s: %w", path, err)
		}
		if len(records) == 0 {
			return "", fmt.Errorf("no sequences in %s: %w", path, dna.ErrEmptyInput)
		}
		if len(records) > 1 {
			stderr.Printf("using the first of %d sequences in %s", len(records), path)
		}
		genome = records[0].Seq
	} else {
		genome = dna.Upper(strings.Join(strings.Fields(text), ""))
	}

	if err := dna.Validate(genome); err != nil {
		return "", fmt.Errorf("genome in %s: %w", path, err)
	}
	return genome, nil
}

// Seqs is the sequence of each record
func Seqs(records []Record) []string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}
	return seqs
}

func isFASTA(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), ">")
}

// parseFASTA reads multi-FASTA with biogo
func parseFASTA(text string) ([]Record, error) {
	r := fasta.NewReader(strings.NewReader(text), linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(r)

	var records []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		records = append(records, Record{
			ID:  s.Name(),
			Seq: dna.Upper(string(s.Seq)),
		})
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return records, nil
}

// open returns a reader over path, or stdin for "-", decompressing .zst files
func open(path string) (goio.Reader, func(), error) {
	var f goio.Reader
	closeFile := func() {}

	if path == Stdin || path == "" {
		f = bufio.NewReader(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		f, closeFile = file, func() { file.Close() }
	}

	if !strings.HasSuffix(path, ".zst") {
		return f, closeFile, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		closeFile()
		return nil, nil, fmt.Errorf("failed to start zstd decoder for %s: %w", path, err)
	}
	return dec, func() {
		dec.Close()
		closeFile()
	}, nil
}

// compress zstd-compresses b
func compress(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderCRC(false), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(b); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
