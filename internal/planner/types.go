// Package planner expands a resolved configuration into an ordered
// sequence of subnet descriptors.
//
// Descriptor order is an external contract: the provisioning backend's
// diff logic keys on the allocation index, so the same logical subnet
// must occupy the same index on every run. Everything here is
// deterministic given the configuration and the zone list.
package planner

import (
	"github.com/imamik/zoneplan/internal/cidr"
)

// Subnet describes one subnet to be created. Immutable once emitted; the
// engine does not track its lifecycle after hand-off.
type Subnet struct {
	// Index is the allocation index, unique in [0, count). It selects
	// both the CIDR slot and the zone.
	Index int `json:"index" yaml:"index"`

	// VPCRef is the parent network reference the subnet attaches to.
	VPCRef string `json:"vpcRef,omitempty" yaml:"vpcRef,omitempty"`

	// CIDR is the subnet's address range, carved from the parent block.
	CIDR cidr.Block `json:"cidr" yaml:"cidr"`

	// Zone is the placement zone, taken from the inventory at Index.
	Zone string `json:"zone" yaml:"zone"`

	// MapPublicIPOnLaunch enables public IP auto-assignment.
	MapPublicIPOnLaunch bool `json:"mapPublicIpOnLaunch" yaml:"mapPublicIpOnLaunch"`

	// Tags carries backend-side labels, at minimum a Name tag.
	Tags map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Plan is the engine's sole externally observable artifact: the full
// descriptor sequence for one region, ascending by index.
type Plan struct {
	Region     string     `json:"region" yaml:"region"`
	VPCRef     string     `json:"vpcRef,omitempty" yaml:"vpcRef,omitempty"`
	ParentCIDR cidr.Block `json:"parentCidr" yaml:"parentCidr"`
	Subnets    []Subnet   `json:"subnets" yaml:"subnets"`
}
