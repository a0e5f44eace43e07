package energy

import (
	"fmt"

	"github.com/wattrace/analyzer-core/internal/model"
)

func formatUserDescription(c model.Constants) string {
	return fmt.Sprintf("%d daily executions × %gx device overhead", c.AssumedDailyUserExecutions, c.DevicePowerOverhead)
}

func formatDevDescription(c model.Constants) string {
	return fmt.Sprintf("%gx developer environment multiplier", c.DevEnvironmentMultiplier)
}

func formatServerDescription(c model.Constants) string {
	return fmt.Sprintf("%d daily requests × %g PUE, plus %g J network energy per request",
		c.AssumedDailyServerRequests, c.ServerPUE, c.NetworkEnergyPerRequestJ)
}
