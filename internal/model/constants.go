package model

// Constants is the process-wide, immutable set of model constants.
// It is exposed as a struct rather than bare package-level values so the
// orchestrator can offer an override for testing without a global mutable
// singleton, matching the "no global singletons" design note.
type Constants struct {
	EnergyPerOpJoules float64
	JoulesPerKWh float64
	CarbonGPerKWh float64
	DefaultLoopIterations int64
	DefaultRecursionDepth int64
	AssumedDailyUserExecutions int64
	AssumedDailyServerRequests int64
	ServerPUE float64
	NetworkEnergyPerRequestJ float64
	DevicePowerOverhead float64
	DevEnvironmentMultiplier float64
}

// DefaultConstants returns the model constants from, unmodified.
func DefaultConstants() Constants {
	return Constants{
		EnergyPerOpJoules: 3e-9,
		JoulesPerKWh: 3_600_000,
		CarbonGPerKWh: 475,
		DefaultLoopIterations: 100,
		DefaultRecursionDepth: 10,
		AssumedDailyUserExecutions: 1_000,
		AssumedDailyServerRequests: 10_000,
		ServerPUE: 1.58,
		NetworkEnergyPerRequestJ: 0.001,
		DevicePowerOverhead: 1.2,
		DevEnvironmentMultiplier: 5,
	}
}
