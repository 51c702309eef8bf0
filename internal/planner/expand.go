package planner

import (
	"fmt"

	"github.com/imamik/zoneplan/internal/cidr"
	"github.com/imamik/zoneplan/internal/config"
)

// Expand produces one subnet descriptor per allocation index.
//
// The count is preferredSubnetCount when set, otherwise the number of
// zones. Expansion is all-or-nothing: any failure returns a nil slice so
// the caller never sees a partial plan.
func Expand(cfg *config.Configuration, zones []string) ([]Subnet, error) {
	count := len(zones)
	if cfg.PreferredSubnetCount != nil {
		count = int(*cfg.PreferredSubnetCount)
	}

	subnets := make([]Subnet, 0, count)
	for i := 0; i < count; i++ {
		block, err := cidr.Subnet(cfg.ParentCIDR, cfg.ExtraBits, uint(i))
		if err != nil {
			return nil, fmt.Errorf("subnet %d: %w", i, err)
		}
		if i >= len(zones) {
			return nil, &ZoneIndexError{Index: i, Zones: len(zones)}
		}

		subnets = append(subnets, Subnet{
			Index:               i,
			VPCRef:              cfg.VPCRef,
			CIDR:                block,
			Zone:                zones[i],
			MapPublicIPOnLaunch: cfg.MapPublicIP,
			Tags: map[string]string{
				"Name": fmt.Sprintf("%s-%d", cfg.NameTag, i),
			},
		})
	}

	return subnets, nil
}
