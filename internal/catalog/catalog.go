// Package catalog memoizes the zone inventory per region for one run.
//
// The provisioning pipeline must see a stable zone order: a mid-expansion
// re-query could reorder zones and silently remap subnets. The catalog
// therefore performs exactly one external query per distinct region and
// serves the cached list thereafter.
package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/imamik/zoneplan/internal/platform/ec2"
)

// Catalog caches zone lists per region. The cache is written once per
// region and read-only afterwards.
type Catalog struct {
	lister ec2.ZoneLister
	log    *zap.Logger

	mu    sync.Mutex
	zones map[string][]string
}

// New creates a catalog backed by the given lister.
func New(lister ec2.ZoneLister, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		lister: lister,
		log:    log,
		zones:  make(map[string][]string),
	}
}

// Zones returns the region's zones in inventory order, querying the
// backing lister at most once per region. Callers must not mutate the
// returned slice.
func (c *Catalog) Zones(ctx context.Context, region string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if zones, ok := c.zones[region]; ok {
		return zones, nil
	}

	zones, err := c.lister.ListZones(ctx, region)
	if err != nil {
		return nil, err
	}

	c.log.Debug("zone inventory fetched",
		zap.String("region", region),
		zap.Int("zones", len(zones)))

	c.zones[region] = zones
	return zones, nil
}

// Static is a fixed zone list satisfying the same contract as Catalog.
// It backs the --zones flag and tests, replacing the live inventory.
type Static []string

// Zones returns the fixed list regardless of region.
func (s Static) Zones(_ context.Context, _ string) ([]string, error) {
	return s, nil
}
