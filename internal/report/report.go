// Package report implements the Result Aggregator: it turns an
// AnalysisResult plus the model constants into the stable, serializable
// structured output, ready for json.Marshal or yaml.Marshal. A pure
// function from an in-memory result to a wire struct, no I/O of its
// own.
package report

import (
	"math"

	"github.com/wattrace/analyzer-core/internal/energy"
	"github.com/wattrace/analyzer-core/internal/model"
)

// FunctionRecord is one function's entry in the serialized report.
type FunctionRecord struct {
	Name string `json:"name" yaml:"name"`
	Line int `json:"line" yaml:"line"`
	WeightedOps int64 `json:"weighted_ops" yaml:"weighted_ops"`
	EnergyJoules float64 `json:"energy_joules" yaml:"energy_joules"`
	CarbonGramsCO2 float64 `json:"carbon_grams_CO2" yaml:"carbon_grams_CO2"`
	IsRecursive bool `json:"is_recursive" yaml:"is_recursive"`
	MaxLoopNesting int `json:"max_loop_nesting" yaml:"max_loop_nesting"`
	Operations map[string]int64 `json:"operations" yaml:"operations"`
}

// Hotspot is one entry of the top-five-by-weighted-ops list, with its
// percentage of the file's total weighted ops.
type Hotspot struct {
	Name string `json:"name" yaml:"name"`
	WeightedOps int64 `json:"weighted_ops" yaml:"weighted_ops"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Report is the analyzer's stable structured-output schema.
type Report struct {
	Language string `json:"language" yaml:"language"`
	FilePath string `json:"file_path" yaml:"file_path"`
	TotalOperations map[string]int64 `json:"total_operations" yaml:"total_operations"`
	TotalWeightedOperations int64 `json:"total_weighted_operations" yaml:"total_weighted_operations"`
	EnergyJoules float64 `json:"energy_joules" yaml:"energy_joules"`
	EnergyKWh float64 `json:"energy_kWh" yaml:"energy_kWh"`
	CarbonGramsCO2 float64 `json:"carbon_grams_CO2" yaml:"carbon_grams_CO2"`
	Functions []FunctionRecord `json:"functions" yaml:"functions"`
	HotspotFunctions []Hotspot `json:"hotspot_functions" yaml:"hotspot_functions"`
	Assumptions []string `json:"assumptions" yaml:"assumptions"`
	ContentHash uint64 `json:"content_hash" yaml:"content_hash"`
}

// ToSerializable builds the wire Report from an AnalysisResult, the
// source bytes it was computed from (for the content hash), and the
// model constants used. It never fails: a hashing error is discarded
// and the hash field is simply left at zero, matching its "clamp and
// continue" error posture.
func ToSerializable(result model.AnalysisResult, source []byte, c model.Constants) Report {
	total := result.TotalOperations()
	totalWeighted := total.TotalWeighted()

	functions := make([]FunctionRecord, 0, len(result.Functions))
	for _, f := range result.Functions {
		functions = append(functions, FunctionRecord{
			Name: f.Name,
			Line: f.Line,
			WeightedOps: f.WeightedOps(),
			EnergyJoules: clamp(f.EnergyJoules(c)),
			CarbonGramsCO2: clamp(f.CarbonGrams(c)),
			IsRecursive: f.IsRecursive,
			MaxLoopNesting: f.MaxLoopNesting,
			Operations: f.Operations.Summary(),
		})
	}

	hotspots := make([]Hotspot, 0, 5)
	for _, f := range result.Hotspots() {
		var pct float64
		if totalWeighted > 0 {
			pct = round2(float64(f.WeightedOps()) / float64(totalWeighted) * 100)
		}
		hotspots = append(hotspots, Hotspot{
			Name: f.Name,
			WeightedOps: f.WeightedOps(),
			Percentage: pct,
		})
	}

	hash, _ := ContentHash(source)

	return Report{
		Language: result.Language,
		FilePath: result.FilePath,
		TotalOperations: total.Summary(),
		TotalWeightedOperations: totalWeighted,
		EnergyJoules: clamp(energy.Joules(totalWeighted, c)),
		EnergyKWh: clamp(energy.KWh(energy.Joules(totalWeighted, c), c)),
		CarbonGramsCO2: clamp(energy.Grams(energy.KWh(energy.Joules(totalWeighted, c), c), c)),
		Functions: functions,
		HotspotFunctions: hotspots,
		Assumptions: append([]string(nil), result.Assumptions...),
		ContentHash: hash,
	}
}

// clamp guards against NaN/Inf reaching a serialized field, per its
// "invalid serialization input" contract — pathological weights should
// never happen, but a clamp costs nothing and keeps a bad model constant
// from producing unparseable JSON.
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
