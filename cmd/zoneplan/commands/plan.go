package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/zoneplan/cmd/zoneplan/handlers"
	"github.com/imamik/zoneplan/internal/config"
)

// Plan returns the command that expands the configuration into a subnet
// plan.
//
// Flags override the values file, which overrides the compiled-in
// defaults. ZONEPLAN_* environment variables sit between the values file
// and the flags.
//
// Environment variables:
//
//	AWS credentials via the default SDK chain (AWS_ACCESS_KEY_ID etc.)
//	ZONEPLAN_REGION, ZONEPLAN_PARENT_CIDR, ZONEPLAN_EXTRA_BITS,
//	ZONEPLAN_COUNT, ZONEPLAN_PUBLIC_IP, ZONEPLAN_VPC_REF
func Plan() *cobra.Command {
	var (
		configPath string
		region     string
		parentCIDR string
		vpcRef     string
		nameTag    string
		extraBits  uint
		count      uint
		publicIP   bool
		zones      []string
		output     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Expand the configuration into a subnet plan",
		Long: `Expand the configuration into an ordered subnet plan.

The plan queries the region's availability zones once, derives one
non-overlapping CIDR per subnet index, and prints the descriptor
sequence. Re-running with the same inputs always yields the same plan.

Examples:
  # Plan using zoneplan.yaml in the current directory
  zoneplan plan

  # Two /20 subnets out of 172.16.0.0/16
  zoneplan plan --parent-cidr 172.16.0.0/16 --extra-bits 4 --count 2

  # Machine-readable hand-off to a provisioning backend
  zoneplan plan -o json

  # Offline run against a fixed zone list
  zoneplan plan --zones eu-central-1a,eu-central-1b`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := config.Values{}
			if cmd.Flags().Changed("region") {
				overrides["region"] = region
			}
			if cmd.Flags().Changed("parent-cidr") {
				overrides["parentCidr"] = parentCIDR
			}
			if cmd.Flags().Changed("extra-bits") {
				overrides["extraBits"] = extraBits
			}
			if cmd.Flags().Changed("count") {
				overrides["preferredSubnetCount"] = count
			}
			if cmd.Flags().Changed("public-ip") {
				overrides["mapPublicIp"] = publicIP
			}
			if cmd.Flags().Changed("vpc-ref") {
				overrides["vpcRef"] = vpcRef
			}
			if cmd.Flags().Changed("name-tag") {
				overrides["nameTag"] = nameTag
			}

			return handlers.Plan(cmd.Context(), handlers.PlanOptions{
				ConfigPath: configPath,
				Overrides:  overrides,
				Zones:      zones,
				Output:     output,
				Verbose:    verbose,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to values file (default: zoneplan.yaml)")
	cmd.Flags().StringVar(&region, "region", "", "Region whose zones place the subnets")
	cmd.Flags().StringVar(&parentCIDR, "parent-cidr", "", "Parent VPC CIDR block")
	cmd.Flags().UintVar(&extraBits, "extra-bits", 0, "Mask bits added per subnet")
	cmd.Flags().UintVar(&count, "count", 0, "Subnet count (default: one per zone)")
	cmd.Flags().BoolVar(&publicIP, "public-ip", false, "Auto-assign public IPs on launch")
	cmd.Flags().StringVar(&vpcRef, "vpc-ref", "", "Parent network reference for the descriptors")
	cmd.Flags().StringVar(&nameTag, "name-tag", "", "Name tag prefix for the descriptors")
	cmd.Flags().StringSliceVar(&zones, "zones", nil, "Fixed zone list, bypassing the live inventory")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
