// Package bmc exposes the management operations of one controller:
// power control, the chassis identify LED, boot-override configuration
// and storage inventory. All operations share a lazily resolved
// endpoint map so a sequence of commands against the same host pays
// for discovery once.
package bmc

import (
	"context"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// BMC wraps a Redfish client with resolved endpoints.
type BMC struct {
	client    *redfish.Client
	endpoints *redfish.Endpoints
}

// New builds a BMC facade over an existing client. No requests are made
// until the first operation.
func New(client *redfish.Client) *BMC {
	return &BMC{client: client}
}

func (b *BMC) resolve(ctx context.Context) (*redfish.Endpoints, error) {
	if b.endpoints != nil {
		return b.endpoints, nil
	}

	eps, err := redfish.Resolve(ctx, b.client)
	if err != nil {
		return nil, err
	}

	b.endpoints = eps

	return eps, nil
}

func (b *BMC) system(ctx context.Context) (*redfish.ComputerSystem, string, error) {
	eps, err := b.resolve(ctx)
	if err != nil {
		return nil, "", err
	}

	var sys redfish.ComputerSystem
	if err := b.client.GetJSON(ctx, eps.System, &sys); err != nil {
		return nil, "", err
	}

	return &sys, eps.System, nil
}
