package bmc

import (
	"context"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// ControllerInventory is one storage controller with its attached
// drives and logical volumes.
type ControllerInventory struct {
	Controller redfish.Storage
	Drives     []redfish.Drive
	Volumes    []redfish.Volume
}

// StorageInventory walks the system's storage controllers and returns
// each with its drives and volumes. A drive or volume that fails to
// load is skipped with a warning rather than failing the whole
// inventory.
func (b *BMC) StorageInventory(ctx context.Context) ([]ControllerInventory, error) {
	sys, _, err := b.system(ctx)
	if err != nil {
		return nil, err
	}

	if sys.Storage == nil || sys.Storage.ID == "" {
		return nil, nil
	}

	var col redfish.Collection
	if err := b.client.GetJSON(ctx, sys.Storage.ID, &col); err != nil {
		return nil, err
	}

	inventory := make([]ControllerInventory, 0, len(col.Members))
	for _, member := range col.Members {
		var ctrl redfish.Storage
		if err := b.client.GetJSON(ctx, member.ID, &ctrl); err != nil {
			logger.Warn().Str("controller", member.ID).Err(err).Msg("Controller fetch failed")
			continue
		}

		inv := ControllerInventory{Controller: ctrl}

		for _, dref := range ctrl.Drives {
			var drive redfish.Drive
			if err := b.client.GetJSON(ctx, dref.ID, &drive); err != nil {
				logger.Warn().Str("drive", dref.ID).Err(err).Msg("Drive fetch failed")
				continue
			}
			inv.Drives = append(inv.Drives, drive)
		}

		if ctrl.Volumes != nil && ctrl.Volumes.ID != "" {
			var vcol redfish.Collection
			if err := b.client.GetJSON(ctx, ctrl.Volumes.ID, &vcol); err != nil {
				logger.Debug().Str("volumes", ctrl.Volumes.ID).Err(err).Msg("Volume collection fetch failed")
			} else {
				for _, vref := range vcol.Members {
					var vol redfish.Volume
					if err := b.client.GetJSON(ctx, vref.ID, &vol); err != nil {
						logger.Warn().Str("volume", vref.ID).Err(err).Msg("Volume fetch failed")
						continue
					}
					inv.Volumes = append(inv.Volumes, vol)
				}
			}
		}

		inventory = append(inventory, inv)
	}

	return inventory, nil
}
