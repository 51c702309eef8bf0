package planner

import (
	"context"

	"go.uber.org/zap"

	"github.com/imamik/zoneplan/internal/config"
)

// ZoneSource supplies a region's ordered zone list. Satisfied by
// catalog.Catalog and catalog.Static.
type ZoneSource interface {
	Zones(ctx context.Context, region string) ([]string, error)
}

// Planner runs the resolve -> catalog -> expand pipeline for one region.
type Planner struct {
	cfg   *config.Configuration
	zones ZoneSource
	log   *zap.Logger
}

// New creates a planner for a resolved configuration.
func New(cfg *config.Configuration, zones ZoneSource, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{cfg: cfg, zones: zones, log: log}
}

// Plan queries the zone inventory once and expands the configuration into
// the full descriptor sequence. The zone query is the pipeline's only
// blocking call; its failure aborts the run.
func (p *Planner) Plan(ctx context.Context) (*Plan, error) {
	zones, err := p.zones.Zones(ctx, p.cfg.Region)
	if err != nil {
		return nil, err
	}

	subnets, err := Expand(p.cfg, zones)
	if err != nil {
		return nil, err
	}

	p.log.Debug("plan expanded",
		zap.String("region", p.cfg.Region),
		zap.Int("subnets", len(subnets)))

	return &Plan{
		Region:     p.cfg.Region,
		VPCRef:     p.cfg.VPCRef,
		ParentCIDR: p.cfg.ParentCIDR,
		Subnets:    subnets,
	}, nil
}
