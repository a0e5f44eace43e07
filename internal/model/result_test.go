package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/model"
)

func makeFunc(name string, weightedAdds int64) model.FunctionAnalysis {
	var ops model.OperationCount
	ops.Add(model.Addition, weightedAdds)
	return model.FunctionAnalysis{Name: name, Operations: ops}
}

func TestAnalysisResult_HotspotsTopFiveStableOnTies(t *testing.T) {
	result := model.AnalysisResult{
		Functions: []model.FunctionAnalysis{
			makeFunc("a", 5),
			makeFunc("b", 10),
			makeFunc("c", 10),
			makeFunc("d", 1),
			makeFunc("e", 7),
			makeFunc("f", 2),
		},
	}
	hotspots := result.Hotspots()
	assert.Len(t, hotspots, 5)
	// b and c tie at weighted 10; definition order (b before c) must win.
	assert.Equal(t, "b", hotspots[0].Name)
	assert.Equal(t, "c", hotspots[1].Name)
	assert.Equal(t, "e", hotspots[2].Name)
	assert.Equal(t, "a", hotspots[3].Name)
	assert.Equal(t, "f", hotspots[4].Name)
}

func TestAnalysisResult_HotspotsFewerThanFive(t *testing.T) {
	result := model.AnalysisResult{Functions: []model.FunctionAnalysis{makeFunc("only", 1)}}
	assert.Len(t, result.Hotspots(), 1)
}

func TestAnalysisResult_TotalOperationsMergesGlobalAndFunctions(t *testing.T) {
	var global model.OperationCount
	global.Add(model.IOOperation, 1)

	result := model.AnalysisResult{
		GlobalOperations: global,
		Functions:        []model.FunctionAnalysis{makeFunc("f", 3)},
	}
	total := result.TotalOperations()
	assert.Equal(t, int64(1), total.Get(model.IOOperation))
	assert.Equal(t, int64(3), total.Get(model.Addition))
}

func TestAnalysisResult_AddAssumptionPreservesOrder(t *testing.T) {
	var result model.AnalysisResult
	result.AddAssumption("first %d", 1)
	result.AddAssumption("second")
	assert.Equal(t, []string{"first 1", "second"}, result.Assumptions)
}
