package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/zoneplan/internal/config"
)

// InitOptions carries the init command's inputs.
type InitOptions struct {
	// Path is the target file; empty means zoneplan.yaml.
	Path string
	// Interactive runs the guided setup instead of the static template.
	Interactive bool
	// Force overwrites an existing file.
	Force bool
}

// starterTemplate is the non-interactive zoneplan.yaml, showing every
// recognized variable with the compiled-in default.
const starterTemplate = `# zoneplan values file.
#
# Values here override the compiled-in defaults; ZONEPLAN_* environment
# variables and plan flags override values here.

# Region whose availability zones place the subnets.
region: eu-central-1

# Parent VPC block the subnets are carved from.
parentCidr: 10.0.0.0/16

# Mask bits added per subnet: 8 makes /24 subnets inside a /16.
extraBits: 8

# Subnet count. Omit to create one subnet per availability zone.
# preferredSubnetCount: 3

# Auto-assign public IPs on launch.
mapPublicIp: false

# Parent network reference carried into every descriptor.
# vpcRef: vpc-0abc123

# Name tag prefix for the descriptors.
nameTag: zoneplan
`

// Factory function variables - can be replaced in tests for dependency injection.
var (
	runWizard  = config.RunWizard
	saveValues = config.Save
	writeFile  = os.WriteFile
	statFile   = os.Stat
)

// Init writes a starter values file, either the commented template or
// the result of the interactive setup.
func Init(ctx context.Context, opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if !opts.Force {
		if _, err := statFile(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if opts.Interactive {
		result, err := runWizard(ctx)
		if err != nil {
			return err
		}
		if err := saveValues(result.Values(), path); err != nil {
			return err
		}
	} else {
		if err := writeFile(path, []byte(starterTemplate), 0o644); err != nil {
			return fmt.Errorf("failed to write values file: %w", err)
		}
	}

	fmt.Fprintf(stdout, "wrote %s\n", path)
	fmt.Fprintf(stdout, "run 'zoneplan plan' to expand it into a subnet plan\n")
	return nil
}
