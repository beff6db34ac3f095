package bmc

import (
	"context"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

var validLEDStates = []string{"Off", "Lit", "Blinking"}

// GetIndicatorLED reads the chassis identify LED state of the system.
func (b *BMC) GetIndicatorLED(ctx context.Context) (string, error) {
	sys, _, err := b.system(ctx)
	if err != nil {
		return "", err
	}

	return sys.IndicatorLED, nil
}

// SetIndicatorLED patches the identify LED to Off, Lit or Blinking.
func (b *BMC) SetIndicatorLED(ctx context.Context, state string) error {
	if !containsString(validLEDStates, state) {
		return errors.New().WithData(errors.ErrInvalidArgument, struct {
			State string
			Valid []string
		}{
			State: state,
			Valid: validLEDStates,
		})
	}

	_, systemURL, err := b.system(ctx)
	if err != nil {
		return err
	}

	payload := map[string]string{"IndicatorLED": state}
	if err := b.client.PatchJSON(ctx, systemURL, payload); err != nil {
		return err
	}

	logger.Info().
		Str("host", b.client.Host()).
		Str("state", state).
		Msg("Indicator LED updated")

	return nil
}
