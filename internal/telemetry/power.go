package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractPower iterates the three independent sub-lists of the chassis
// power resource: power-control domains, voltage sensors and power
// supplies. Each entry becomes one record.
func extractPower(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var power redfish.Power
	if err := c.GetJSON(ctx, eps.Chassis+"/Power", &power); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(power.PowerControl)+len(power.Voltages)+len(power.PowerSupplies))

	for _, ctl := range power.PowerControl {
		rec := newRecord(c.Host(), ts, CategoryPower, TypePowerControl)
		rec.SensorID = ctl.MemberID
		rec.SensorName = ctl.Name
		rec.PowerConsumedWatts = ctl.PowerConsumedWatts
		rec.PowerRequestedWatts = ctl.PowerRequestedWatts
		rec.PowerAvailableWatts = ctl.PowerAvailableWatts
		rec.PowerCapacityWatts = ctl.PowerCapacityWatts
		rec.PowerAllocatedWatts = ctl.PowerAllocatedWatts
		rec.PowerLimitWatts = ctl.PowerLimit.LimitInWatts
		rec.Health = ctl.Status.Health
		rec.State = ctl.Status.State
		records = append(records, rec)
	}

	for _, voltage := range power.Voltages {
		rec := newRecord(c.Host(), ts, CategoryPower, TypeVoltage)
		rec.SensorID = voltage.MemberID
		rec.SensorName = voltage.Name
		rec.ReadingVolts = voltage.ReadingVolts
		rec.UpperThresholdCritical = voltage.UpperThresholdCritical
		rec.UpperThresholdFatal = voltage.UpperThresholdFatal
		rec.LowerThresholdCritical = voltage.LowerThresholdCritical
		rec.LowerThresholdFatal = voltage.LowerThresholdFatal
		rec.PhysicalContext = voltage.PhysicalContext
		rec.Health = voltage.Status.Health
		rec.State = voltage.Status.State
		records = append(records, rec)
	}

	for _, psu := range power.PowerSupplies {
		rec := newRecord(c.Host(), ts, CategoryPower, TypePowerSupply)
		rec.SensorID = psu.MemberID
		rec.SensorName = psu.Name
		rec.PowerCapacityWatts = psu.PowerCapacityWatts
		rec.PowerInputWatts = psu.PowerInputWatts
		rec.PowerOutputWatts = psu.PowerOutputWatts
		rec.EfficiencyPercent = psuEfficiency(psu)
		rec.LineInputVoltage = psu.LineInputVoltage
		rec.LineInputVoltageType = psu.LineInputVoltageType
		rec.Model = psu.Model
		rec.Manufacturer = psu.Manufacturer
		rec.SerialNumber = psu.SerialNumber
		rec.PartNumber = psu.PartNumber
		rec.FirmwareVersion = psu.FirmwareVersion
		rec.Health = psu.Status.Health
		rec.State = psu.Status.State
		records = append(records, rec)
	}

	return records, nil
}

// psuEfficiency returns the reported efficiency, or derives it from the
// input/output wattage when the firmware omits it. With insufficient
// data the efficiency stays absent; a zero input never divides.
func psuEfficiency(psu redfish.PowerSupply) *float64 {
	if psu.EfficiencyPercent != nil {
		return psu.EfficiencyPercent
	}

	if psu.PowerInputWatts == nil || psu.PowerOutputWatts == nil || *psu.PowerInputWatts <= 0 {
		return nil
	}

	derived := *psu.PowerOutputWatts / *psu.PowerInputWatts * 100
	return &derived
}
