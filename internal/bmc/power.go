package bmc

import (
	"context"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// Reset types defined by the ComputerSystem schema. Firmware may
// support only a subset; AvailablePowerActions reports the real list
// when the service publishes one.
var validResetTypes = []string{
	"On",
	"ForceOff",
	"GracefulShutdown",
	"GracefulRestart",
	"ForceRestart",
	"Nmi",
	"ForceOn",
	"PushPowerButton",
}

// GetPowerState reads the current system power state, e.g. "On" or
// "Off".
func (b *BMC) GetPowerState(ctx context.Context) (string, error) {
	sys, _, err := b.system(ctx)
	if err != nil {
		return "", err
	}

	return sys.PowerState, nil
}

// SetPowerState invokes the system reset action with the given reset
// type.
func (b *BMC) SetPowerState(ctx context.Context, resetType string) error {
	if !containsString(validResetTypes, resetType) {
		return errors.New().WithData(errors.ErrInvalidArgument, struct {
			ResetType string
			Valid     []string
		}{
			ResetType: resetType,
			Valid:     validResetTypes,
		})
	}

	sys, _, err := b.system(ctx)
	if err != nil {
		return err
	}

	target := sys.Actions.Reset.Target
	if target == "" {
		return errors.New().WithData(errors.ErrMissingLink, "#ComputerSystem.Reset target")
	}

	payload := map[string]string{"ResetType": resetType}
	if err := b.client.PostJSON(ctx, target, payload); err != nil {
		return err
	}

	logger.Info().
		Str("host", b.client.Host()).
		Str("reset_type", resetType).
		Msg("Power action submitted")

	return nil
}

// AvailablePowerActions returns the reset types the firmware accepts.
// When the service publishes an ActionInfo resource that list is
// authoritative; otherwise the schema-defined set is returned.
func (b *BMC) AvailablePowerActions(ctx context.Context) ([]string, error) {
	sys, _, err := b.system(ctx)
	if err != nil {
		return nil, err
	}

	info := sys.Actions.Reset.ActionInfo
	if info == "" {
		return validResetTypes, nil
	}

	var ai redfish.ActionInfo
	if err := b.client.GetJSON(ctx, info, &ai); err != nil {
		logger.Debug().Err(err).Msg("ActionInfo fetch failed, using schema defaults")
		return validResetTypes, nil
	}

	for _, p := range ai.Parameters {
		if p.Name == "ResetType" && len(p.AllowableValues) > 0 {
			return p.AllowableValues, nil
		}
	}

	return validResetTypes, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
