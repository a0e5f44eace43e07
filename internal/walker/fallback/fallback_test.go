package fallback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/walker/fallback"
)

func TestAnalyze_CStyleForLoopCountsBodyPerIteration(t *testing.T) {
	src := `int sum(int n) {
    int total = 0;
    for (int i = 0; i < 5; i++) {
        total = total + i;
    }
    return total;
}
`
	result := fallback.Analyze([]byte(src), model.C, "sum.c", model.DefaultConstants())
	require.Len(t, result.Functions, 1)
	fn := result.Functions[0]
	assert.Equal(t, "sum", fn.Name)
	assert.Equal(t, 1, fn.MaxLoopNesting)
	// total = total + i executes 5 times, each with 1 assign and 1 add.
	assert.GreaterOrEqual(t, fn.Operations.Get(model.Addition), int64(5))
	assert.GreaterOrEqual(t, fn.Operations.Get(model.Assignment), int64(5))
}

func TestAnalyze_RecursiveFunctionIsScaled(t *testing.T) {
	src := `int fib(int n) {
    if (n <= 1) {
        return n;
    }
    return fib(n - 1) + fib(n - 2);
}
`
	result := fallback.Analyze([]byte(src), model.C, "fib.c", model.DefaultConstants())
	require.Len(t, result.Functions, 1)
	assert.True(t, result.Functions[0].IsRecursive)
}

func TestAnalyze_PythonFunctionDiscoveryByIndentation(t *testing.T) {
	src := "def add(a, b):\n    total = a + b\n    return total\n"
	result := fallback.Analyze([]byte(src), model.Python, "add.py", model.DefaultConstants())
	require.Len(t, result.Functions, 1)
	assert.Equal(t, "add", result.Functions[0].Name)
	assert.Equal(t, int64(1), result.Functions[0].Operations.Get(model.Addition))
}

func TestAnalyze_AlwaysRecordsFallbackAssumptions(t *testing.T) {
	result := fallback.Analyze([]byte("x = 1;\n"), model.Java, "x.java", model.DefaultConstants())
	assert.NotEmpty(t, result.Assumptions)
	assert.Contains(t, result.Assumptions[0], "textual fallback")
}
