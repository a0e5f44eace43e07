package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/model"
	"github.com/wattrace/analyzer-core/internal/report"
)

func TestToSerializable_HotspotPercentagesAndTotals(t *testing.T) {
	c := model.DefaultConstants()

	var opsA, opsB model.OperationCount
	opsA.Add(model.Addition, 100) // weighted 100
	opsB.Add(model.IOOperation, 2) // weighted 100

	result := model.AnalysisResult{
		Language: "python",
		FilePath: "f.py",
		Functions: []model.FunctionAnalysis{
			{Name: "a", Line: 1, Operations: opsA},
			{Name: "b", Line: 5, Operations: opsB},
		},
		Assumptions: []string{"note"},
	}

	rep := report.ToSerializable(result, []byte("source"), c)

	assert.Equal(t, "python", rep.Language)
	assert.Equal(t, int64(200), rep.TotalWeightedOperations)
	assert.Len(t, rep.HotspotFunctions, 2)
	assert.InDelta(t, 50.0, rep.HotspotFunctions[0].Percentage, 1e-9)
	assert.InDelta(t, 50.0, rep.HotspotFunctions[1].Percentage, 1e-9)
	assert.Equal(t, []string{"note"}, rep.Assumptions)
	assert.NotZero(t, rep.ContentHash)
}

func TestToSerializable_ZeroTotalYieldsZeroPercentages(t *testing.T) {
	c := model.DefaultConstants()
	result := model.AnalysisResult{Functions: []model.FunctionAnalysis{{Name: "empty"}}}
	rep := report.ToSerializable(result, nil, c)
	assert.Equal(t, 0.0, rep.HotspotFunctions[0].Percentage)
}

func TestToYAML_RoundTripsWithoutError(t *testing.T) {
	c := model.DefaultConstants()
	rep := report.ToSerializable(model.AnalysisResult{Language: "java"}, []byte("x"), c)
	out, err := report.ToYAML(rep)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "language: java")
}
