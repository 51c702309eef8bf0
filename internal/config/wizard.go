package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/zoneplan/internal/cidr"
)

// WizardResult holds the user's choices from the interactive setup.
type WizardResult struct {
	Region      string
	ParentCIDR  string
	ExtraBits   uint
	Count       string // empty means "one subnet per zone"
	MapPublicIP bool
}

// RunWizard walks the user through a starter zoneplan.yaml.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Region:     "eu-central-1",
		ParentCIDR: "10.0.0.0/16",
		ExtraBits:  8,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Region").
				Description("The region whose availability zones place your subnets").
				Options(
					huh.NewOption("Frankfurt (eu-central-1)", "eu-central-1"),
					huh.NewOption("Ireland (eu-west-1)", "eu-west-1"),
					huh.NewOption("N. Virginia (us-east-1)", "us-east-1"),
					huh.NewOption("Oregon (us-west-2)", "us-west-2"),
					huh.NewOption("Singapore (ap-southeast-1)", "ap-southeast-1"),
				).
				Value(&result.Region),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("VPC CIDR block").
				Description("The parent range subnets are carved from").
				Placeholder("10.0.0.0/16").
				Value(&result.ParentCIDR).
				Validate(validateCIDR),
		),

		huh.NewGroup(
			huh.NewSelect[uint]().
				Title("Subnet size").
				Description("Extension bits added to the VPC mask per subnet").
				Options(
					huh.NewOption("/20 inside a /16 (4 bits, 16 subnets)", uint(4)),
					huh.NewOption("/22 inside a /16 (6 bits, 64 subnets)", uint(6)),
					huh.NewOption("/24 inside a /16 (8 bits, 256 subnets)", uint(8)),
				).
				Value(&result.ExtraBits),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Subnet count (optional)").
				Description("Leave empty to create one subnet per availability zone").
				Placeholder("").
				Value(&result.Count).
				Validate(validateCount),

			huh.NewConfirm().
				Title("Auto-assign public IPs?").
				Description("Sets map_public_ip_on_launch on every subnet").
				Value(&result.MapPublicIP),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// Values converts the wizard result to an override layer suitable for
// saving as a values file.
func (r *WizardResult) Values() Values {
	values := Values{
		"region":      r.Region,
		"parentCidr":  r.ParentCIDR,
		"extraBits":   r.ExtraBits,
		"mapPublicIp": r.MapPublicIP,
	}
	if count := strings.TrimSpace(r.Count); count != "" {
		// Already validated by the form.
		n, _ := strconv.ParseUint(count, 10, 32)
		values["preferredSubnetCount"] = uint(n)
	}
	return values
}

func validateCIDR(s string) error {
	_, err := cidr.Parse(s)
	return err
}

func validateCount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}
