package redfish

import (
	"context"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
)

// ServiceRootPath is the fixed entry point of every Redfish service.
const ServiceRootPath = "/redfish/v1/"

// Endpoints maps logical roles to absolute resource URLs. It is
// populated once by Resolve and read-only afterwards.
type Endpoints struct {
	ServiceRoot      string
	System           string
	Chassis          string
	Manager          string
	TelemetryService string // empty when the service does not expose one
}

// HasTelemetryService reports whether a telemetry service link was found.
func (e *Endpoints) HasTelemetryService() bool {
	return e.TelemetryService != ""
}

// Resolve walks the service root and its Systems, Chassis and Managers
// collections and returns the resulting endpoint map. Any failure,
// including a missing expected link, returns an error and no map.
//
// A Systems collection with more than one member is rejected: multi-node
// topologies are unsupported and picking an arbitrary member would
// silently collect the wrong machine.
func Resolve(ctx context.Context, c *Client) (*Endpoints, error) {
	errFactory := errors.New()

	var root ServiceRoot
	if err := c.GetJSON(ctx, ServiceRootPath, &root); err != nil {
		return nil, errFactory.Wrap(errors.ErrDiscovery, err)
	}

	eps := &Endpoints{ServiceRoot: c.URL(ServiceRootPath)}

	system, err := resolveCollection(ctx, c, root.Systems, "Systems", true)
	if err != nil {
		return nil, err
	}
	eps.System = system

	chassis, err := resolveCollection(ctx, c, root.Chassis, "Chassis", false)
	if err != nil {
		return nil, err
	}
	eps.Chassis = chassis

	manager, err := resolveCollection(ctx, c, root.Managers, "Managers", false)
	if err != nil {
		return nil, err
	}
	eps.Manager = manager

	if root.TelemetryService != nil && root.TelemetryService.ID != "" {
		eps.TelemetryService = c.URL(root.TelemetryService.ID)
	} else {
		logger.Debug().Msg("Service exposes no TelemetryService resource")
	}

	logger.Debug().
		Str("system", eps.System).
		Str("chassis", eps.Chassis).
		Str("manager", eps.Manager).
		Bool("telemetry_service", eps.HasTelemetryService()).
		Msg("Redfish endpoints resolved")

	return eps, nil
}

// resolveCollection follows one collection link and returns the absolute
// URL of its member. When single is set the collection must contain
// exactly one member; otherwise the first member is used.
func resolveCollection(ctx context.Context, c *Client, ref *ODataRef, role string, single bool) (string, error) {
	errFactory := errors.New()

	if ref == nil || ref.ID == "" {
		return "", errFactory.WithData(errors.ErrMissingLink, struct {
			Link string
			URL  string
		}{
			Link: role,
			URL:  c.URL(ServiceRootPath),
		})
	}

	var col Collection
	if err := c.GetJSON(ctx, ref.ID, &col); err != nil {
		return "", errFactory.Wrap(errors.ErrDiscovery, err)
	}

	if len(col.Members) == 0 {
		return "", errFactory.WithData(errors.ErrMissingLink, struct {
			Link string
			URL  string
		}{
			Link: role + " member",
			URL:  c.URL(ref.ID),
		})
	}

	if single && len(col.Members) > 1 {
		return "", errFactory.WithData(errors.ErrUnsupportedTopology, struct {
			Collection string
			Members    int
		}{
			Collection: c.URL(ref.ID),
			Members:    len(col.Members),
		})
	}

	return c.URL(col.Members[0].ID), nil
}
