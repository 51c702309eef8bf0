package config

import (
	"fmt"

	"github.com/imamik/zoneplan/internal/cidr"
)

// Configuration is the fully resolved variable set for one run.
// It is immutable once returned by Resolve.
type Configuration struct {
	// Region is the cloud region whose zone inventory drives the plan.
	Region string

	// ParentCIDR is the VPC block the subnets are carved from.
	ParentCIDR cidr.Block

	// ExtraBits is the number of mask bits added to ParentCIDR for each
	// subnet, bounding the plan at 2^ExtraBits subnets.
	ExtraBits uint

	// PreferredSubnetCount overrides the zone-count-derived subnet count
	// when non-nil.
	PreferredSubnetCount *uint

	// MapPublicIP sets public IP auto-assignment on every subnet.
	MapPublicIP bool

	// VPCRef is the parent network reference carried into every
	// descriptor, e.g. a VPC ID or a backend-side symbolic name.
	VPCRef string

	// NameTag is the prefix for each subnet's Name tag.
	NameTag string
}

// Validate checks the resolved configuration for errors the layering
// itself cannot catch.
func (c *Configuration) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.ParentCIDR.IsZero() {
		return fmt.Errorf("parentCidr is required")
	}
	return nil
}
