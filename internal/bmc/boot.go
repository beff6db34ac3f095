package bmc

import (
	"context"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

var (
	validBootModes     = []string{"UEFI", "Legacy"}
	validBootEnables   = []string{"Disabled", "Once", "Continuous"}
	defaultBootTargets = []string{
		"None", "Pxe", "Floppy", "Cd", "Usb", "Hdd",
		"BiosSetup", "Utilities", "Diags", "UefiTarget",
		"SDCard", "UefiHttp",
	}
)

// BootConfig is the current boot-override state of the system.
type BootConfig struct {
	Enabled string
	Target  string
	Mode    string
	Order   []string
}

// GetBootConfig reads the boot-override block.
func (b *BMC) GetBootConfig(ctx context.Context) (*BootConfig, error) {
	sys, _, err := b.system(ctx)
	if err != nil {
		return nil, err
	}

	return &BootConfig{
		Enabled: sys.Boot.BootSourceOverrideEnabled,
		Target:  sys.Boot.BootSourceOverrideTarget,
		Mode:    sys.Boot.BootSourceOverrideMode,
		Order:   sys.Boot.BootOrder,
	}, nil
}

// SetBootTarget configures a boot-source override. The enabled value
// controls how long the override holds: Once clears after the next
// boot, Continuous holds until changed and Disabled removes it. An
// empty mode leaves the current boot mode untouched.
func (b *BMC) SetBootTarget(ctx context.Context, target, enabled, mode string) error {
	if !containsString(validBootEnables, enabled) {
		return errors.New().WithData(errors.ErrInvalidArgument, struct {
			Enabled string
			Valid   []string
		}{
			Enabled: enabled,
			Valid:   validBootEnables,
		})
	}

	if mode != "" && !containsString(validBootModes, mode) {
		return errors.New().WithData(errors.ErrInvalidArgument, struct {
			Mode  string
			Valid []string
		}{
			Mode:  mode,
			Valid: validBootModes,
		})
	}

	sys, systemURL, err := b.system(ctx)
	if err != nil {
		return err
	}

	allowed := sys.Boot.AllowableTargets
	if len(allowed) == 0 {
		allowed = defaultBootTargets
	}
	if enabled != "Disabled" && !containsString(allowed, target) {
		return errors.New().WithData(errors.ErrInvalidArgument, struct {
			Target string
			Valid  []string
		}{
			Target: target,
			Valid:  allowed,
		})
	}

	boot := map[string]string{
		"BootSourceOverrideEnabled": enabled,
	}
	if enabled != "Disabled" {
		boot["BootSourceOverrideTarget"] = target
	}
	if mode != "" {
		boot["BootSourceOverrideMode"] = mode
	}

	payload := map[string]any{"Boot": boot}
	if err := b.client.PatchJSON(ctx, systemURL, payload); err != nil {
		return err
	}

	logger.Info().
		Str("host", b.client.Host()).
		Str("target", target).
		Str("enabled", enabled).
		Msg("Boot override updated")

	return nil
}

// SetPXEOnce arms a one-shot PXE boot for the next restart.
func (b *BMC) SetPXEOnce(ctx context.Context, mode string) error {
	return b.SetBootTarget(ctx, "Pxe", "Once", mode)
}

// SetPXEContinuous arms PXE boot until explicitly cleared.
func (b *BMC) SetPXEContinuous(ctx context.Context, mode string) error {
	return b.SetBootTarget(ctx, "Pxe", "Continuous", mode)
}

// DisableBootOverride clears any active boot-source override.
func (b *BMC) DisableBootOverride(ctx context.Context) error {
	return b.SetBootTarget(ctx, "", "Disabled", "")
}

// AvailableBootTargets returns the targets the firmware advertises, or
// the schema-defined set when no allowable-values annotation exists.
func (b *BMC) AvailableBootTargets(ctx context.Context) ([]string, error) {
	sys, _, err := b.system(ctx)
	if err != nil {
		return nil, err
	}

	if len(sys.Boot.AllowableTargets) > 0 {
		return sys.Boot.AllowableTargets, nil
	}

	return defaultBootTargets, nil
}
