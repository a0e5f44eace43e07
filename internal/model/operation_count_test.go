package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/model"
)

func TestOperationCount_AddAndWeight(t *testing.T) {
	var c model.OperationCount
	c.Add(model.Addition, 3)
	c.Add(model.IOOperation, 2)
	c.Add(model.Addition, -5) // negative is ignored

	assert.Equal(t, int64(3), c.Get(model.Addition))
	assert.Equal(t, int64(2), c.Get(model.IOOperation))
	// 3*1 (addition weight) + 2*50 (io weight)
	assert.Equal(t, int64(103), c.TotalWeighted())
	assert.Equal(t, int64(5), c.TotalRaw())
}

func TestOperationCount_Scale(t *testing.T) {
	var c model.OperationCount
	c.Add(model.Multiplication, 4)

	scaled := c.Scale(10)
	assert.Equal(t, int64(40), scaled.Get(model.Multiplication))
	assert.Equal(t, int64(4), c.Get(model.Multiplication), "Scale must not mutate the receiver")

	zero := c.Scale(0)
	assert.Equal(t, int64(0), zero.TotalRaw())
}

func TestOperationCount_MergeCommutative(t *testing.T) {
	var a, b model.OperationCount
	a.Add(model.Comparison, 2)
	b.Add(model.Comparison, 3)
	b.Add(model.Division, 1)

	merged := model.MergeCounts(a, b)
	assert.Equal(t, int64(5), merged.Get(model.Comparison))
	assert.Equal(t, int64(1), merged.Get(model.Division))

	reversed := model.MergeCounts(b, a)
	assert.Equal(t, merged.TotalWeighted(), reversed.TotalWeighted())
}

func TestOperationCount_Summary(t *testing.T) {
	var c model.OperationCount
	c.Add(model.NetworkOperation, 1)
	summary := c.Summary()
	assert.Equal(t, map[string]int64{"network_operation": 1}, summary)
}

func TestOperationKind_StringRoundTrip(t *testing.T) {
	for _, k := range model.AllKinds() {
		parsed, ok := model.ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
}
