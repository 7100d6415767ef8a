// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package histg

// Counters accumulates the results of one or more enumeration runs
// (spec.md §6, RunData). HistsThisRun and TreesThisRun are reset at the
// start of every FindHists/FindSpanningTrees call; HistsTotal and
// TreesTotal accumulate across calls for callers that drive many runs
// (e.g. the hypohisterian orchestrator, or a CLI processing a stream of
// graphs) and report a grand total at the end.
type Counters struct {
	HistsThisRun int
	HistsTotal   int
	TreesThisRun int
	TreesTotal   int
}

// Reset zeroes every field of c.
func (c *Counters) Reset() {
	*c = Counters{}
}

// startRun zeroes the per-run fields, leaving the totals untouched.
func (c *Counters) startRun() {
	c.HistsThisRun = 0
	c.TreesThisRun = 0
}

// finishRun folds the per-run fields into the running totals.
func (c *Counters) finishRun() {
	c.HistsTotal += c.HistsThisRun
	c.TreesTotal += c.TreesThisRun
}

// Reporter is the sink the enumeration driver hands each materialised HIST
// or spanning tree to. Report is called once per tree with a freshly
// constructed Graph the callee owns for the duration of the call; the
// overlay retains no reference into it afterward.
type Reporter interface {
	Report(tree *Graph)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(tree *Graph)

// Report calls f(tree).
func (f ReporterFunc) Report(tree *Graph) { f(tree) }
