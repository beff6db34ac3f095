package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractMemory walks the Memory collection and fetches each member,
// one record per DIMM.
func extractMemory(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var col redfish.Collection
	if err := c.GetJSON(ctx, eps.System+"/Memory", &col); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(col.Members))

	for _, member := range col.Members {
		var dimm redfish.Memory
		if err := c.GetJSON(ctx, member.ID, &dimm); err != nil {
			return nil, err
		}

		rec := newRecord(c.Host(), ts, CategoryMemory, TypeDIMM)
		rec.MemoryID = dimm.ID
		rec.DeviceLocator = dimm.DeviceLocator
		rec.MemoryType = dimm.MemoryType
		rec.MemoryDeviceType = dimm.MemoryDeviceType
		rec.CapacityMiB = dimm.CapacityMiB
		rec.OperatingSpeedMHz = dimm.OperatingSpeedMhz
		rec.AllowedSpeedsMHz = dimm.AllowedSpeedsMHz
		rec.Manufacturer = dimm.Manufacturer
		rec.PartNumber = dimm.PartNumber
		rec.SerialNumber = dimm.SerialNumber
		rec.RankCount = dimm.RankCount
		rec.DataWidthBits = dimm.DataWidthBits
		rec.BusWidthBits = dimm.BusWidthBits
		rec.Health = dimm.Status.Health
		rec.State = dimm.Status.State

		if dimm.Metrics != nil && dimm.Metrics.ID != "" {
			var metrics redfish.MemoryMetrics
			if err := c.GetJSON(ctx, dimm.Metrics.ID, &metrics); err != nil {
				logger.Debug().Str("url", c.URL(dimm.Metrics.ID)).Err(err).Msg("Memory metrics unavailable")
			} else {
				rec.TemperatureCelsius = metrics.TemperatureCelsius
				rec.ConsumedPowerWatts = metrics.ConsumedPowerWatts
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
