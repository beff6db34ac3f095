package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractProcessors walks the Processors collection and fetches each
// member, one record per socket. Together with memory this is the one
// extractor pair that costs N+1 requests per pass.
func extractProcessors(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var col redfish.Collection
	if err := c.GetJSON(ctx, eps.System+"/Processors", &col); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(col.Members))

	for _, member := range col.Members {
		var proc redfish.Processor
		if err := c.GetJSON(ctx, member.ID, &proc); err != nil {
			return nil, err
		}

		rec := newRecord(c.Host(), ts, CategoryProcessor, TypeCPU)
		rec.ProcessorID = proc.ID
		rec.Socket = proc.Socket
		rec.ProcessorType = proc.ProcessorType
		rec.Architecture = proc.ProcessorArchitecture
		rec.InstructionSet = proc.InstructionSet
		rec.Manufacturer = proc.Manufacturer
		rec.Model = proc.Model
		rec.MaxSpeedMHz = proc.MaxSpeedMHz
		rec.TotalCores = proc.TotalCores
		rec.TotalThreads = proc.TotalThreads
		rec.Health = proc.Status.Health
		rec.State = proc.Status.State

		// Live readings are optional; a metrics resource that fails to
		// load does not invalidate the inventory part of the record.
		if proc.Metrics != nil && proc.Metrics.ID != "" {
			var metrics redfish.ProcessorMetrics
			if err := c.GetJSON(ctx, proc.Metrics.ID, &metrics); err != nil {
				logger.Debug().Str("url", c.URL(proc.Metrics.ID)).Err(err).Msg("Processor metrics unavailable")
			} else {
				rec.OperatingSpeedMHz = metrics.OperatingSpeedMHz
				rec.TemperatureCelsius = metrics.TemperatureCelsius
				rec.ConsumedPowerWatts = metrics.ConsumedPowerWatts
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
