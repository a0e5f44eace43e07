// Package energy converts weighted operation totals into joules, kWh, and
// grams of CO2, and derives the three-tier daily footprint breakdown.
// Every function here is pure in total_weighted_ops and the model
// constants; nothing here mutates or retains its inputs.
package energy

import "github.com/wattrace/analyzer-core/internal/model"

// Joules converts a weighted operation total into joules.
func Joules(weightedOps int64, c model.Constants) float64 {
	return float64(weightedOps) * c.EnergyPerOpJoules
}

// KWh converts joules into kilowatt-hours.
func KWh(joules float64, c model.Constants) float64 {
	return joules / c.JoulesPerKWh
}

// Grams converts kilowatt-hours into grams of CO2.
func Grams(kwh float64, c model.Constants) float64 {
	return kwh * c.CarbonGPerKWh
}

// CategoryFootprint is one deployment tier's energy/carbon figures.
type CategoryFootprint struct {
	Label string
	Description string
	EnergyJ float64
	CarbonG float64
}

func footprint(label, description string, joules float64, c model.Constants) CategoryFootprint {
	kwh := KWh(joules, c)
	return CategoryFootprint{
		Label: label,
		Description: description,
		EnergyJ: joules,
		CarbonG: Grams(kwh, c),
	}
}

// CarbonBreakdown carries the three deployment tiers plus their pointwise
// sum.
type CarbonBreakdown struct {
	UserEnd CategoryFootprint
	DeveloperEnd CategoryFootprint
	ServerSide CategoryFootprint
	Total CategoryFootprint
}

// Breakdown derives the three-tier daily footprint from a single
// per-execution weighted operation total. All arithmetic is
// double precision; base joules are computed once and every tier derives
// from it, per the "avoid intermediate loss" design note.
func Breakdown(weightedOps int64, c model.Constants) CarbonBreakdown {
	base := Joules(weightedOps, c)

	userJ := base * c.DevicePowerOverhead * float64(c.AssumedDailyUserExecutions)
	userEnd := footprint(
		"User End",
		formatUserDescription(c),
		userJ,
		c,
	)

	devJ := base * c.DevEnvironmentMultiplier
	developerEnd := footprint(
		"Developer End",
		formatDevDescription(c),
		devJ,
		c,
	)

	serverJ := base*c.ServerPUE*float64(c.AssumedDailyServerRequests) +
		c.NetworkEnergyPerRequestJ*float64(c.AssumedDailyServerRequests)
	serverSide := footprint(
		"Server Side",
		formatServerDescription(c),
		serverJ,
		c,
	)

	totalJ := userEnd.EnergyJ + developerEnd.EnergyJ + serverSide.EnergyJ
	total := footprint("Total", "Sum of user end, developer end, and server side", totalJ, c)

	return CarbonBreakdown{
		UserEnd: userEnd,
		DeveloperEnd: developerEnd,
		ServerSide: serverSide,
		Total: total,
	}
}
