package model

import "math"

// OperationCount is a mapping from OperationKind to a non-negative count.
// Every kind is always present (default zero); the zero value is ready
// to use, a value-typed accumulator that copies by assignment instead of
// aliasing.
type OperationCount struct {
	counts [numKinds]int64
}

// Add increments the count for k by n. Negative n is ignored (counts
// never go negative); overflow saturates at MaxInt64 rather than
// wrapping.
func (c *OperationCount) Add(k OperationKind, n int64) {
	if n <= 0 || k < 0 || int(k) >= int(numKinds) {
		return
	}
	if c.counts[k] > math.MaxInt64-n {
		c.counts[k] = math.MaxInt64
		return
	}
	c.counts[k] += n
}

// Get returns the count for k.
func (c OperationCount) Get(k OperationKind) int64 {
	if k < 0 || int(k) >= int(numKinds) {
		return 0
	}
	return c.counts[k]
}

// Merge adds other's counts into c pointwise. Merge is commutative and
// associative because it is plain vector addition.
func (c *OperationCount) Merge(other OperationCount) {
	for k := range c.counts {
		c.Add(OperationKind(k), other.counts[k])
	}
}

// Scale returns a new OperationCount with every count multiplied by
// factor. scale preserves zeros and Scale(0) yields the empty counter.
func (c OperationCount) Scale(factor int64) OperationCount {
	var out OperationCount
	if factor <= 0 {
		return out
	}
	for k, n := range c.counts {
		if n == 0 {
			continue
		}
		if n > math.MaxInt64/factor {
			out.counts[k] = math.MaxInt64
			continue
		}
		out.counts[k] = n * factor
	}
	return out
}

// TotalRaw returns the sum of every kind's count, unweighted.
func (c OperationCount) TotalRaw() int64 {
	var total int64
	for _, n := range c.counts {
		total += n
	}
	return total
}

// TotalWeighted returns Σ count[k] * weight[k].
func (c OperationCount) TotalWeighted() int64 {
	var total int64
	for k, n := range c.counts {
		if n == 0 {
			continue
		}
		total += n * weight[k]
	}
	return total
}

// Summary returns only the non-zero entries, keyed by canonical wire name.
func (c OperationCount) Summary() map[string]int64 {
	out := make(map[string]int64)
	for k, n := range c.counts {
		if n > 0 {
			out[name[k]] = n
		}
	}
	return out
}

// MergeCounts returns a new OperationCount that is the pointwise sum of
// all the given counters. A convenience for the Result Aggregator.
func MergeCounts(counters ...OperationCount) OperationCount {
	var out OperationCount
	for _, c := range counters {
		out.Merge(c)
	}
	return out
}
