// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command histg reads graphs (one per line, graph6 by default) from a
// file or standard input and reports their spanning-tree count, HIST
// count, and/or hypohisterian status as a CSV stream, mirroring the
// options of original_source/src/histg.c. Flag parsing follows
// gaissmai-bart/cmd's bare stdlib-flag style; there is no CLI framework
// anywhere in the corpus this program draws from.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/histg/histg"
	histgio "github.com/histg/histg/io"
)

type outputFormat int

const (
	formatGraph6 outputFormat = iota
	formatAdjacencyMatrix
	formatAdjacencyList
)

func parseOutputFormat(s string) outputFormat {
	switch s {
	case "am":
		return formatAdjacencyMatrix
	case "al":
		return formatAdjacencyList
	default:
		return formatGraph6
	}
}

func writeGraph(w *bufio.Writer, g *histg.Graph, format outputFormat) {
	switch format {
	case formatAdjacencyMatrix:
		histgio.WriteAdjacencyMatrix(g, w)
	case formatAdjacencyList:
		histgio.WriteAdjacencyList(g, w)
	default:
		w.WriteString(histgio.WriteGraph6(g))
	}
}

func main() {
	var (
		inputPath   = flag.String("input", "", "input file to read (default standard input)")
		outputPath  = flag.String("output", "", "output file to write (default standard output)")
		quiet       = flag.Bool("quiet", false, "suppress the per-graph CSV row")
		hist        = flag.Bool("hist", false, "count homeomorphically irreducible spanning trees (default if none of -hist/-spanning/-hypohist is given)")
		spanning    = flag.Bool("spanning", false, "count regular spanning trees instead of HISTs")
		hypohist    = flag.Bool("hypohist", false, "decide whether each graph is hypohisterian")
		enumerate   = flag.Bool("enumerate", false, "also emit every found tree, to -enumerate_output or standard output")
		enumOutPath = flag.String("enumerate_output", "", "destination file for -enumerate (default standard output)")
		positives   = flag.Bool("positives", false, "only print rows where the relevant count is at least one")
		negatives   = flag.Bool("negatives", false, "only print rows where the relevant count is zero")
		boolean     = flag.Bool("boolean", false, "stop at the first tree/HIST found; print 0 or 1 instead of a count")
		timing      = flag.Bool("timing", false, "append elapsed wall-clock seconds after the spanning and hist columns")
		csvHeader   = flag.Bool("csv_header", false, "print a CSV header row before the data")
		graphEcho   = flag.Bool("graph-echo", false, "echo each input graph (in the chosen output format) as the first column")
		formatFlag  = flag.String("output_format", "g6", "output format for enumerated trees and echoed graphs: g6, am, or al")
	)
	flag.Parse()

	if !*hist && !*spanning && !*hypohist {
		*hist = true
	}
	if !*positives && !*negatives {
		*positives, *negatives = true, true
	}
	format := parseOutputFormat(*formatFlag)

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("histg: opening input file: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			log.Fatalf("histg: opening output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	stdout := bufio.NewWriter(out)
	defer stdout.Flush()

	var enumOut *bufio.Writer
	if *enumerate {
		if *enumOutPath != "" {
			f, err := os.Create(*enumOutPath)
			if err != nil {
				log.Fatalf("histg: opening enumerate output file: %v", err)
			}
			defer f.Close()
			enumOut = bufio.NewWriter(f)
			defer enumOut.Flush()
		} else {
			enumOut = stdout
		}
	}

	printHeader(stdout, *csvHeader, *graphEcho, *spanning, *hist, *hypohist, *timing)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := histgio.ParseGraph6(line)
		if err != nil {
			log.Printf("histg: skipping unparsable line: %v", err)
			continue
		}

		var cols []string
		if *graphEcho {
			var sb strings.Builder
			bw := bufio.NewWriter(&sb)
			writeGraph(bw, g, format)
			bw.Flush()
			cols = append(cols, strings.TrimRight(sb.String(), "\n"))
		}

		var reporter histg.Reporter
		if enumOut != nil {
			reporter = histg.ReporterFunc(func(t *histg.Graph) {
				writeGraph(enumOut, t, format)
			})
		}

		var nbSpanning, nbHists int
		var isHypohist bool

		if *spanning {
			start := time.Now()
			run := &histg.Counters{}
			histg.FindSpanningTrees(g, reporter, *boolean, run)
			elapsed := time.Since(start)
			nbSpanning = run.TreesThisRun
			cols = append(cols, countColumn(nbSpanning, *boolean))
			if *timing {
				cols = append(cols, fmt.Sprintf("%f", elapsed.Seconds()))
			}
		}

		if *hist {
			start := time.Now()
			run := &histg.Counters{}
			histg.FindHists(g, 0, reporter, *boolean, run)
			elapsed := time.Since(start)
			nbHists = run.HistsThisRun
			cols = append(cols, countColumn(nbHists, *boolean))
			if *timing {
				cols = append(cols, fmt.Sprintf("%f", elapsed.Seconds()))
			}
		}

		if *hypohist {
			run := &histg.Counters{}
			isHypohist = histg.IsHypohist(g, reporter, false, run)
			if isHypohist {
				cols = append(cols, "1")
			} else {
				cols = append(cols, "0")
			}
		}

		if !*quiet && shouldPrint(*positives, *negatives, *spanning, *hist, *hypohist, nbSpanning, nbHists, isHypohist) {
			fmt.Fprintln(stdout, strings.Join(cols, ","))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("histg: reading input: %v", err)
	}
}

func countColumn(n int, boolean bool) string {
	if !boolean {
		return fmt.Sprintf("%d", n)
	}
	if n > 0 {
		return "1"
	}
	return "0"
}

func printHeader(w *bufio.Writer, header, echo, spanning, hist, hypohist, timing bool) {
	if !header {
		return
	}
	var cols []string
	if echo {
		cols = append(cols, "graph")
	}
	if spanning {
		cols = append(cols, "spanning_trees")
		if timing {
			cols = append(cols, "spanning_trees_timing")
		}
	}
	if hist {
		cols = append(cols, "hists")
		if timing {
			cols = append(cols, "hists_timing")
		}
	}
	if hypohist {
		cols = append(cols, "hypohist")
	}
	fmt.Fprintln(w, strings.Join(cols, ","))
}

func shouldPrint(positives, negatives, spanning, hist, hypohist bool, nbSpanning, nbHists int, isHypohist bool) bool {
	if positives && negatives {
		return true
	}
	if positives && ((spanning && nbSpanning > 0) || (hist && nbHists > 0) || (hypohist && isHypohist)) {
		return true
	}
	if negatives && ((spanning && nbSpanning == 0) || (hist && nbHists == 0) || (hypohist && !isHypohist)) {
		return true
	}
	return false
}
