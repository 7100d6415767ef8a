// Copyright 2018 Sonia Keys
// License MIT: https://opensource.org/licenses/MIT

package io_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/histg/histg"
	histgio "github.com/histg/histg/io"
)

func sampleGraph() *histg.Graph {
	g := histg.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	return g
}

func TestAdjacencyMatrixRoundTrip(t *testing.T) {
	g := sampleGraph()
	var buf bytes.Buffer
	if _, err := histgio.WriteAdjacencyMatrix(g, &buf); err != nil {
		t.Fatalf("WriteAdjacencyMatrix: %v", err)
	}
	got, err := histgio.ReadAdjacencyMatrix(&buf)
	if err != nil {
		t.Fatalf("ReadAdjacencyMatrix: %v", err)
	}
	if got.Vertices != g.Vertices || got.Edges != g.Edges {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, g)
	}
}

func TestReadAdjacencyMatrixRejectsRagged(t *testing.T) {
	_, err := histgio.ReadAdjacencyMatrix(strings.NewReader("010\n1\n010\n"))
	if err != histg.ErrNonSquareMatrix {
		t.Errorf("ReadAdjacencyMatrix on ragged input = %v, want ErrNonSquareMatrix", err)
	}
}

func TestAdjacencyListRoundTrip(t *testing.T) {
	g := sampleGraph()
	var buf bytes.Buffer
	if _, err := histgio.WriteAdjacencyList(g, &buf); err != nil {
		t.Fatalf("WriteAdjacencyList: %v", err)
	}
	got, err := histgio.ReadAdjacencyList(&buf)
	if err != nil {
		t.Fatalf("ReadAdjacencyList: %v", err)
	}
	if got.Vertices != g.Vertices || got.Edges != g.Edges {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, g)
	}
}

func TestReadAdjacencyListMalformedLine(t *testing.T) {
	if _, err := histgio.ReadAdjacencyList(strings.NewReader("not-a-line\n")); err == nil {
		t.Error("ReadAdjacencyList on malformed input should error")
	}
}
