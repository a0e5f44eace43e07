package energy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wattrace/analyzer-core/internal/energy"
	"github.com/wattrace/analyzer-core/internal/model"
)

func TestJoulesKWhGrams(t *testing.T) {
	c := model.DefaultConstants()
	j := energy.Joules(1000, c)
	assert.InDelta(t, 3e-6, j, 1e-12)

	kwh := energy.KWh(j, c)
	assert.InDelta(t, j/3_600_000, kwh, 1e-15)

	grams := energy.Grams(kwh, c)
	assert.InDelta(t, kwh*475, grams, 1e-15)
}

func TestBreakdown_TotalIsSumOfTiers(t *testing.T) {
	c := model.DefaultConstants()
	b := energy.Breakdown(10_000, c)

	assert.InDelta(t, b.UserEnd.EnergyJ+b.DeveloperEnd.EnergyJ+b.ServerSide.EnergyJ, b.Total.EnergyJ, 1e-9)
	assert.InDelta(t, b.UserEnd.CarbonG+b.DeveloperEnd.CarbonG+b.ServerSide.CarbonG, b.Total.CarbonG, 1e-9)
	assert.Contains(t, b.UserEnd.Description, "daily executions")
	assert.Contains(t, b.ServerSide.Description, "PUE")
}

func TestBreakdown_ZeroOpsLeavesOnlyServerNetworkEnergy(t *testing.T) {
	c := model.DefaultConstants()
	b := energy.Breakdown(0, c)
	assert.Equal(t, 0.0, b.UserEnd.EnergyJ)
	assert.Equal(t, 0.0, b.DeveloperEnd.EnergyJ)
	// 0.001 J network energy per request × 10000 daily server requests.
	assert.InDelta(t, 10.0, b.Total.EnergyJ, 1e-9)
	assert.InDelta(t, 10.0/3_600_000*475, b.Total.CarbonG, 1e-12)
}
