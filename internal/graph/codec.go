package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads an adjacency list, one source per line, as either
//
//	FROM: TO TO ...
//	FROM -> TO,TO,...
//
// Blank lines are skipped. Destinations are added as nodes even if they
// have no line of their own
func Parse(r io.Reader) (*Graph, error) {
	g := New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var from, rest string
		if i := strings.Index(line, "->"); i >= 0 {
			from, rest = line[:i], line[i+2:]
		} else if i := strings.Index(line, ":"); i >= 0 {
			from, rest = line[:i], line[i+1:]
		} else {
			return nil, fmt.Errorf("line %d: expected \"FROM: TO ...\" or \"FROM -> TO,...\", got %q", lineNo, line)
		}

		from = strings.TrimSpace(from)
		if from == "" {
			return nil, fmt.Errorf("line %d: missing source node", lineNo)
		}

		g.AddNode(from)
		for _, to := range strings.FieldsFunc(rest, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			g.AddEdge(from, to)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	return g, nil
}

// Format writes the graph as "FROM: TO TO ..." lines, in node order,
// skipping nodes without outgoing edges
func Format(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	for _, n := range g.order {
		tos := g.adj[n]
		if len(tos) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s: %s\n", n, strings.Join(tos, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
