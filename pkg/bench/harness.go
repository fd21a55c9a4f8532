package bench

import (
	"time"

	"github.com/marcusj6/JumpSearchTree/pkg/dictionary"
	"github.com/marcusj6/JumpSearchTree/pkg/workload"
)

// Op names the dictionary operation a workload record drives the
// harness through.
type Op string

const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
	OpSearch Op = "search"
)

// Result summarizes one Harness run.
type Result struct {
	TreeName       string
	OperationCount int
	RebuildCount   int
	TotalDuration  time.Duration
	FinalHeight    int
	FinalSize      int
	AverageNodeSz  float64
}

// Harness drives a workload.Workload against a dictionary.Dictionary,
// recording per-operation latency and rebuild occurrences via Metrics,
// and reports a Result summary.
type Harness struct {
	metrics *Metrics
}

// NewHarness creates a Harness reporting into m. m may be nil, in which
// case Run still returns a Result but records no Prometheus metrics.
func NewHarness(m *Metrics) *Harness {
	return &Harness{metrics: m}
}

// Run executes op against every record in w, in order, against tree,
// reporting a Result summary. op selects which dictionary operation
// every workload record drives.
func (h *Harness) Run(treeName string, tree dictionary.Dictionary, w *workload.Workload, op Op) Result {
	var rebuildCount int
	start := time.Now()

	for _, rec := range w.Records {
		opStart := time.Now()
		var rebuilt bool

		switch op {
		case OpInsert:
			tree.InsertKey(rec.Key, rec.Value)
			rebuilt = tree.LastOpRebuilt()
		case OpDelete:
			tree.DeleteKey(rec.Key)
			rebuilt = tree.LastOpRebuilt()
		case OpSearch:
			// LastOpRebuilt reports only on the most recent Insert/Delete;
			// a search never rebuilds, so it's left false here rather than
			// read from a flag a search call never touches.
			tree.Search(rec.Key)
		}

		if h.metrics != nil {
			h.metrics.RecordOp(treeName, string(op), true, time.Since(opStart))
		}
		if rebuilt {
			rebuildCount++
			if h.metrics != nil {
				h.metrics.RecordRebuild(treeName)
			}
		}
	}

	if h.metrics != nil {
		h.metrics.UpdateTreeStats(treeName, tree.TreeHeight(), tree.Size(), tree.AverageNodeSize())
	}

	return Result{
		TreeName:       treeName,
		OperationCount: len(w.Records),
		RebuildCount:   rebuildCount,
		TotalDuration:  time.Since(start),
		FinalHeight:    tree.TreeHeight(),
		FinalSize:      tree.Size(),
		AverageNodeSz:  tree.AverageNodeSize(),
	}
}
