package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractThermal iterates the temperature-sensor and fan lists of the
// chassis thermal resource. Each sensor becomes one record. Thresholds
// the firmware does not report are left absent, not defaulted to zero.
func extractThermal(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var thermal redfish.Thermal
	if err := c.GetJSON(ctx, eps.Chassis+"/Thermal", &thermal); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(thermal.Temperatures)+len(thermal.Fans))

	for _, temp := range thermal.Temperatures {
		rec := newRecord(c.Host(), ts, CategoryThermal, TypeTemperature)
		rec.SensorID = temp.MemberID
		rec.SensorName = temp.Name
		rec.ReadingCelsius = temp.ReadingCelsius
		rec.UpperThresholdCritical = temp.UpperThresholdCritical
		rec.UpperThresholdFatal = temp.UpperThresholdFatal
		rec.LowerThresholdCritical = temp.LowerThresholdCritical
		rec.PhysicalContext = temp.PhysicalContext
		rec.Health = temp.Status.Health
		rec.State = temp.Status.State
		records = append(records, rec)
	}

	for _, fan := range thermal.Fans {
		rec := newRecord(c.Host(), ts, CategoryThermal, TypeFan)
		rec.SensorID = fan.MemberID
		rec.SensorName = fan.Name
		rec.ReadingRPM = fan.Reading
		rec.ReadingUnits = fan.ReadingUnits
		rec.UpperThresholdCritical = intThreshold(fan.UpperThresholdCritical)
		rec.LowerThresholdCritical = intThreshold(fan.LowerThresholdCritical)
		rec.PhysicalContext = fan.PhysicalContext
		rec.Health = fan.Status.Health
		rec.State = fan.Status.State
		records = append(records, rec)
	}

	return records, nil
}
