package model

import (
	"fmt"
	"sort"
)

// AnalysisResult is the complete outcome of analyzing one source file.
// Ordering of Functions and Assumptions is significant and must be
// preserved by every producer.
type AnalysisResult struct {
	Language string
	FilePath string
	Functions []FunctionAnalysis
	GlobalOperations OperationCount
	Assumptions []string
}

// AddAssumption appends a human-readable assumption string, preserving
// recording order.
func (r *AnalysisResult) AddAssumption(format string, args...any) {
	r.Assumptions = append(r.Assumptions, fmt.Sprintf(format, args...))
}

// TotalOperations merges GlobalOperations with every function's operations.
func (r AnalysisResult) TotalOperations() OperationCount {
	counters := make([]OperationCount, 0, len(r.Functions)+1)
	counters = append(counters, r.GlobalOperations)
	for _, f := range r.Functions {
		counters = append(counters, f.Operations)
	}
	return MergeCounts(counters...)
}

// TotalWeightedOps is the weighted operation total across the whole file.
func (r AnalysisResult) TotalWeightedOps() int64 {
	return r.TotalOperations().TotalWeighted()
}

// Hotspot is one entry of the top-five-by-weighted-ops list.
type Hotspot struct {
	Name string
	WeightedOps int64
	PercentageOf float64 // populated by the caller against a chosen total; 0 here
}

// Hotspots returns the top five functions by weighted ops, descending,
// ties broken by definition order.
func (r AnalysisResult) Hotspots() []FunctionAnalysis {
	indexed := make([]struct {
		fn FunctionAnalysis
		idx int
	}, len(r.Functions))
	for i, f := range r.Functions {
		indexed[i] = struct {
			fn FunctionAnalysis
			idx int
		}{f, i}
	}
	sort.SliceStable(indexed, func(i, j int) bool {
		wi, wj := indexed[i].fn.WeightedOps(), indexed[j].fn.WeightedOps()
		if wi != wj {
			return wi > wj
		}
		return indexed[i].idx < indexed[j].idx
	})
	n := 5
	if len(indexed) < n {
		n = len(indexed)
	}
	out := make([]FunctionAnalysis, n)
	for i := 0; i < n; i++ {
		out[i] = indexed[i].fn
	}
	return out
}
