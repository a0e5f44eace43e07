package model

// FunctionAnalysis is the analysis of a single function or method.
// Instances are owned solely by the analysis call that produced them.
type FunctionAnalysis struct {
	// Name is the qualified name, "Class.method" for methods, a bare
	// name for free functions.
	Name string
	// Line is the 1-based line the definition starts on.
	Line int
	// Operations is the accumulated operation count for the whole body,
	// already scaled for recursion if IsRecursive is set.
	Operations OperationCount
	// MaxLoopNesting is the deepest loop nesting reached inside the body.
	MaxLoopNesting int
	// IsRecursive is true iff a call to the function's own short name
	// appears anywhere in its body (syntactic detection only).
	IsRecursive bool
	// Calls lists callee short names encountered in the body, in the
	// order they were seen. Optional; nil when a walker chooses not to
	// track it.
	Calls []string
}

// WeightedOps is the weighted operation total for this function alone.
func (f FunctionAnalysis) WeightedOps() int64 {
	return f.Operations.TotalWeighted()
}

// EnergyJoules is the per-execution energy attributable to this function.
func (f FunctionAnalysis) EnergyJoules(c Constants) float64 {
	return float64(f.WeightedOps()) * c.EnergyPerOpJoules
}

// EnergyKWh converts EnergyJoules to kilowatt-hours.
func (f FunctionAnalysis) EnergyKWh(c Constants) float64 {
	return f.EnergyJoules(c) / c.JoulesPerKWh
}

// CarbonGrams converts EnergyKWh to grams of CO2.
func (f FunctionAnalysis) CarbonGrams(c Constants) float64 {
	return f.EnergyKWh(c) * c.CarbonGPerKWh
}
