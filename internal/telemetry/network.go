package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// extractNetwork walks the NetworkInterfaces collection, one record per
// interface. The port count comes from the count annotation embedded in
// the interface payload; the port collection itself is never fetched.
func extractNetwork(ctx context.Context, c *redfish.Client, eps *redfish.Endpoints, ts time.Time) ([]Record, error) {
	var col redfish.Collection
	if err := c.GetJSON(ctx, eps.System+"/NetworkInterfaces", &col); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(col.Members))

	for _, member := range col.Members {
		var nic redfish.NetworkInterface
		if err := c.GetJSON(ctx, member.ID, &nic); err != nil {
			return nil, err
		}

		rec := newRecord(c.Host(), ts, CategoryNetwork, TypeInterface)
		rec.InterfaceID = nic.ID
		rec.Name = nic.Name
		rec.Description = nic.Description
		rec.Ports = nic.PortCount
		rec.Health = nic.Status.Health
		rec.State = nic.Status.State
		records = append(records, rec)
	}

	return records, nil
}
