// Copyright 2018 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/histg/histg"
)

const graph6Bias = 63

// ParseGraph6 decodes a single graph6 line (without its trailing newline)
// into a Graph. It supports the 1-byte vertex-count header (n <= 62) and
// the 4-byte extended header (63 <= n <= histg.MaxVertices); larger graphs
// are rejected since histg caps vertices at 64.
func ParseGraph6(line string) (*histg.Graph, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, histg.ErrMalformedGraph6
	}
	data := []byte(line)
	for _, b := range data {
		if b < graph6Bias || b > 126 {
			return nil, histg.ErrMalformedGraph6
		}
	}

	n, body, err := decodeGraph6Size(data)
	if err != nil {
		return nil, err
	}
	if n > histg.MaxVertices {
		return nil, fmt.Errorf("io: graph6 vertex count %d exceeds histg.MaxVertices: %w", n, histg.ErrTooManyVertices)
	}

	g := histg.NewGraph(n)
	bitLen := n * (n - 1) / 2
	bitsAvailable := len(body) * 6
	if bitsAvailable < bitLen {
		return nil, histg.ErrMalformedGraph6
	}

	bit := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			byteIdx := bit / 6
			shift := 5 - (bit % 6)
			if (body[byteIdx]-graph6Bias)&(1<<uint(shift)) != 0 {
				g.AddEdge(histg.NI(i), histg.NI(j))
			}
			bit++
		}
	}
	return g, nil
}

// decodeGraph6Size decodes the vertex-count header at the start of data
// and returns the vertex count and the remaining encoded-bits bytes.
func decodeGraph6Size(data []byte) (n int, body []byte, err error) {
	if len(data) == 0 {
		return 0, nil, histg.ErrMalformedGraph6
	}
	if data[0] != 126 {
		return int(data[0]) - graph6Bias, data[1:], nil
	}
	if len(data) < 4 {
		return 0, nil, histg.ErrMalformedGraph6
	}
	n = 0
	for _, b := range data[1:4] {
		n = n<<6 | int(b-graph6Bias)
	}
	return n, data[4:], nil
}

// WriteGraph6 encodes g as a graph6 line, including the trailing newline.
func WriteGraph6(g *histg.Graph) string {
	var sb strings.Builder
	writeGraph6Size(&sb, g.Vertices)

	bitLen := g.Vertices * (g.Vertices - 1) / 2
	nBytes := (bitLen + 5) / 6
	packed := make([]byte, nBytes)

	bit := 0
	for j := 0; j < g.Vertices; j++ {
		for i := 0; i < j; i++ {
			if g.HasEdge(histg.NI(i), histg.NI(j)) {
				packed[bit/6] |= 1 << uint(5-bit%6)
			}
			bit++
		}
	}
	for _, b := range packed {
		sb.WriteByte(b + graph6Bias)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func writeGraph6Size(sb *strings.Builder, n int) {
	if n <= 62 {
		sb.WriteByte(byte(n + graph6Bias))
		return
	}
	sb.WriteByte(126)
	for shift := 12; shift >= 0; shift -= 6 {
		sb.WriteByte(byte(((n>>uint(shift))&0x3f)+graph6Bias))
	}
}

// ReadGraph6All reads every graph6 line from r, skipping blank lines.
func ReadGraph6All(r io.Reader) ([]*histg.Graph, error) {
	var graphs []*histg.Graph
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGraph6(line)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return graphs, nil
}
