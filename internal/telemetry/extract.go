package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractFunc fetches one category's source resources and normalizes
// them into records. Extractors are independent: a failure in one never
// aborts the others (the Collector enforces the isolation).
type extractFunc func(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error)

var extractors = map[Category]extractFunc{
	CategorySystem:    extractSystem,
	CategoryThermal:   extractThermal,
	CategoryPower:     extractPower,
	CategoryProcessor: extractProcessors,
	CategoryMemory:    extractMemory,
	CategoryNetwork:   extractNetwork,
	CategoryStorage:   extractStorage,
}

func intThreshold(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
