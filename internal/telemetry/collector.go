package telemetry

import (
	"context"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/redfish"
)

// CollectionResult aggregates one collection pass: records for the
// categories that succeeded, and a side map of per-category failures.
type CollectionResult struct {
	Records []Record
	Errors  map[Category]error
}

// OK reports whether every requested category succeeded.
func (r CollectionResult) OK() bool {
	return len(r.Errors) == 0
}

// Collector orchestrates the resolver and the per-category extractors
// against one management controller. It owns the transport and the
// endpoint map; the map is resolved on first use and cached for the
// lifetime of the collector.
type Collector struct {
	client    *redfish.Client
	endpoints *redfish.Endpoints
}

// NewCollector builds a collector for the given transport.
func NewCollector(client *redfish.Client) *Collector {
	return &Collector{client: client}
}

// Collect runs the extractors for the requested categories in the fixed
// collection order. An empty category list collects everything.
// Endpoint resolution failure is fatal and returns an error; past that
// point any per-category failure is recorded in the result's error map
// and the remaining categories still run.
func (c *Collector) Collect(ctx context.Context, categories []Category) (CollectionResult, error) {
	result := CollectionResult{Errors: make(map[Category]error)}

	if len(categories) == 0 {
		categories = AllCategories
	}

	eps, err := c.resolve(ctx)
	if err != nil {
		return result, err
	}

	requested := make(map[Category]bool, len(categories))
	for _, cat := range categories {
		requested[cat] = true
	}

	ts := time.Now()

	for _, cat := range AllCategories {
		if !requested[cat] {
			continue
		}

		extract, ok := extractors[cat]
		if !ok {
			result.Errors[cat] = errors.New().WithData(errors.ErrInvalidCategory, cat)
			continue
		}

		records, err := extract(ctx, c.client, eps, ts)
		if err != nil {
			result.Errors[cat] = errors.New().Wrap(errors.ErrExtraction, err)
			logger.Warn().
				Str("category", string(cat)).
				Err(err).
				Msg("Telemetry extraction failed")
			continue
		}

		result.Records = append(result.Records, records...)
	}

	return result, nil
}

// CollectAll collects every supported category.
func (c *Collector) CollectAll(ctx context.Context) (CollectionResult, error) {
	return c.Collect(ctx, AllCategories)
}

// Endpoints returns the resolved endpoint map, resolving it on first use.
func (c *Collector) Endpoints(ctx context.Context) (*redfish.Endpoints, error) {
	return c.resolve(ctx)
}

func (c *Collector) resolve(ctx context.Context) (*redfish.Endpoints, error) {
	if c.endpoints != nil {
		return c.endpoints, nil
	}

	eps, err := redfish.Resolve(ctx, c.client)
	if err != nil {
		return nil, err
	}

	c.endpoints = eps
	return eps, nil
}
