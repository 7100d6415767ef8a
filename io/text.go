// Copyright 2018 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/histg/histg"
)

// WriteAdjacencyMatrix writes g as one binary row per line, '1'/'0' per
// column, matching the adjacency-matrix output format named in spec.md §6.
func WriteAdjacencyMatrix(g *histg.Graph, w io.Writer) (n int, err error) {
	bw := bufio.NewWriter(w)
	for v := 0; v < g.Vertices; v++ {
		row := make([]byte, g.Vertices)
		for u := 0; u < g.Vertices; u++ {
			if g.HasEdge(histg.NI(v), histg.NI(u)) {
				row[u] = '1'
			} else {
				row[u] = '0'
			}
		}
		row = append(row, '\n')
		nn, werr := bw.Write(row)
		n += nn
		if werr != nil {
			return n, werr
		}
	}
	return n, bw.Flush()
}

// ReadAdjacencyMatrix reads every non-blank line as one row of '0'/'1'
// characters and returns the corresponding Graph. The number of rows is
// the vertex count, and every row must be exactly that long.
func ReadAdjacencyMatrix(r io.Reader) (*histg.Graph, error) {
	s := bufio.NewScanner(r)
	var rows []string
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, histg.ErrNonSquareMatrix
		}
	}
	g := histg.NewGraph(n)
	for v, row := range rows {
		for u := v + 1; u < n; u++ {
			if row[u] == '1' {
				g.AddEdge(histg.NI(v), histg.NI(u))
			}
		}
	}
	return g, nil
}

// WriteAdjacencyList writes g as one line per vertex: the vertex number,
// a colon, and its neighbors in ascending order.
func WriteAdjacencyList(g *histg.Graph, w io.Writer) (n int, err error) {
	bw := bufio.NewWriter(w)
	for v := 0; v < g.Vertices; v++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d:", v)
		for u := 0; u < g.Vertices; u++ {
			if g.HasEdge(histg.NI(v), histg.NI(u)) {
				fmt.Fprintf(&sb, " %d", u)
			}
		}
		sb.WriteByte('\n')
		nn, werr := bw.WriteString(sb.String())
		n += nn
		if werr != nil {
			return n, werr
		}
	}
	return n, bw.Flush()
}

// ReadAdjacencyList reads lines of the form "v: n1 n2 n3" and returns the
// corresponding Graph. The vertex count is taken to be the number of
// lines read.
func ReadAdjacencyList(r io.Reader) (*histg.Graph, error) {
	s := bufio.NewScanner(r)
	var lines []string
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	g := histg.NewGraph(len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("io: malformed adjacency-list line %q", line)
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("io: malformed vertex number in %q: %w", line, err)
		}
		fields := strings.Fields(parts[1])
		for _, f := range fields {
			u, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("io: malformed neighbor in %q: %w", line, err)
			}
			if u > v {
				g.AddEdge(histg.NI(v), histg.NI(u))
			}
		}
	}
	return g, nil
}
