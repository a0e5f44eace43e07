package watttrace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	watttrace "github.com/wattrace/analyzer-core"
)

func TestNewAndInitialize_DefaultsAreUsable(t *testing.T) {
	a := watttrace.New()
	require.NoError(t, a.Initialize(""))
	defer a.Dispose()

	src := []byte("def add(a, b):\n    return a + b\n")
	result := a.Estimate(context.Background(), src, "add.py", watttrace.Unknown)

	require.Len(t, result.Functions, 1)
	assert.Equal(t, "add", result.Functions[0].Name)
}

func TestEstimateSync_WorksWithoutInitialize(t *testing.T) {
	a := watttrace.New()

	src := []byte("int add(int a, int b) { return a + b; }\n")
	result := a.EstimateSync(src, "add.c", watttrace.Unknown)

	require.Len(t, result.Functions, 1)
}

func TestToSerializable_ProducesStableReport(t *testing.T) {
	a := watttrace.New()
	src := []byte("def add(a, b):\n    return a + b\n")
	result := a.EstimateSync(src, "add.py", watttrace.Unknown)

	report := a.ToSerializable(result, src)
	assert.Equal(t, "add.py", report.FilePath)
	assert.NotZero(t, report.ContentHash)
	require.Len(t, report.Functions, 1)
	assert.Equal(t, "add", report.Functions[0].Name)
	assert.Greater(t, report.EnergyJoules, 0.0)
}

func TestDispose_LeavesAnalyzerUsableViaEstimateSync(t *testing.T) {
	a := watttrace.New()
	require.NoError(t, a.Initialize(""))
	a.Dispose()

	src := []byte("x = 1 + 2\n")
	result := a.EstimateSync(src, "g.py", watttrace.Unknown)
	assert.Greater(t, result.TotalWeightedOps(), int64(0))
}
