package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractSystem emits exactly one record from the system resource.
// The processor and memory summaries are derived from nested fields of
// the same response; no additional requests are made.
func extractSystem(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var system redfish.ComputerSystem
	if err := c.GetJSON(ctx, eps.System, &system); err != nil {
		return nil, err
	}

	rec := newRecord(c.Host(), ts, CategorySystem, TypeSystem)
	rec.PowerState = system.PowerState
	rec.Health = system.Status.Health
	rec.State = system.Status.State
	rec.Manufacturer = system.Manufacturer
	rec.Model = system.Model
	rec.SerialNumber = system.SerialNumber
	rec.PartNumber = system.PartNumber
	rec.BiosVersion = system.BiosVersion
	rec.UUID = system.UUID

	rec.BootSource = &BootSource{
		OverrideEnabled: system.Boot.BootSourceOverrideEnabled,
		OverrideTarget:  system.Boot.BootSourceOverrideTarget,
		OverrideMode:    system.Boot.BootSourceOverrideMode,
		UefiTarget:      system.Boot.UefiTargetBootSourceOverride,
	}
	rec.ProcessorSummary = &ProcessorSummary{
		Count:  system.ProcessorSummary.Count,
		Model:  system.ProcessorSummary.Model,
		Health: system.ProcessorSummary.Status.Health,
		State:  system.ProcessorSummary.Status.State,
	}
	rec.MemorySummary = &MemorySummary{
		TotalSystemMemoryGiB: system.MemorySummary.TotalSystemMemoryGiB,
		Health:               system.MemorySummary.Status.Health,
		State:                system.MemorySummary.Status.State,
	}

	return []Record{rec}, nil
}
