package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractStorage walks the Storage collection: one controller record
// per member, then one drive record per physical drive attached to it.
func extractStorage(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var col redfish.Collection
	if err := c.GetJSON(ctx, eps.System+"/Storage", &col); err != nil {
		return nil, err
	}

	var records []Record

	for _, member := range col.Members {
		var controller redfish.Storage
		if err := c.GetJSON(ctx, member.ID, &controller); err != nil {
			return nil, err
		}

		rec := newRecord(c.Host(), ts, CategoryStorage, TypeController)
		rec.ControllerID = controller.ID
		rec.Name = controller.Name
		rec.Manufacturer = controller.Manufacturer
		rec.Model = controller.Model
		rec.FirmwareVersion = controller.FirmwareVersion
		rec.SupportedProtocols = controller.SupportedDeviceProtocols
		rec.Health = controller.Status.Health
		rec.State = controller.Status.State
		records = append(records, rec)

		for _, driveRef := range controller.Drives {
			var drive redfish.Drive
			if err := c.GetJSON(ctx, driveRef.ID, &drive); err != nil {
				return nil, err
			}

			rec := newRecord(c.Host(), ts, CategoryStorage, TypeDrive)
			rec.DriveID = drive.ID
			rec.Name = drive.Name
			rec.Manufacturer = drive.Manufacturer
			rec.Model = drive.Model
			rec.SerialNumber = drive.SerialNumber
			rec.CapacityBytes = drive.CapacityBytes
			rec.MediaType = drive.MediaType
			rec.Protocol = drive.Protocol
			rec.RotationSpeedRPM = drive.RotationSpeedRPM
			rec.FailurePredicted = drive.FailurePredicted
			rec.IndicatorLED = drive.IndicatorLED
			rec.Location = drive.PhysicalLocation.PartLocation.ServiceLabel
			rec.Health = drive.Status.Health
			rec.State = drive.Status.State
			records = append(records, rec)
		}
	}

	return records, nil
}
