// Package ui renders a subnet plan for human eyes.
package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/zoneplan/internal/planner"
)

// IsTerminal reports whether f is an interactive terminal, so callers
// can drop color for pipes and CI logs.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderPlan formats a plan as an aligned table. With colored false the
// output is plain text.
func RenderPlan(p *planner.Plan, colored bool) string {
	var b strings.Builder

	title := fmt.Sprintf("Subnet plan for %s (%s)", p.Region, p.ParentCIDR)
	b.WriteString(styleIf(titleStyle, title, colored))
	if p.VPCRef != "" {
		b.WriteString(styleIf(dimStyle, fmt.Sprintf("  vpc: %s", p.VPCRef), colored))
	}
	b.WriteString("\n\n")

	cidrWidth, zoneWidth := len("CIDR"), len("ZONE")
	for _, s := range p.Subnets {
		if w := len(s.CIDR.String()); w > cidrWidth {
			cidrWidth = w
		}
		if w := len(s.Zone); w > zoneWidth {
			zoneWidth = w
		}
	}

	header := fmt.Sprintf("  %-5s  %-*s  %-*s  %s",
		"INDEX", cidrWidth, "CIDR", zoneWidth, "ZONE", "PUBLIC-IP")
	b.WriteString(styleIf(headerStyle, header, colored))
	b.WriteString("\n")

	for _, s := range p.Subnets {
		zone := fmt.Sprintf("%-*s", zoneWidth, s.Zone)
		b.WriteString(fmt.Sprintf("  %-5d  %-*s  %s  %s\n",
			s.Index,
			cidrWidth, s.CIDR.String(),
			styleIf(zoneStyle, zone, colored),
			strconv.FormatBool(s.MapPublicIPOnLaunch)))
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("%d subnet(s) planned", len(p.Subnets))
	b.WriteString(styleIf(dimStyle, footer, colored))
	b.WriteString("\n")

	return b.String()
}

func styleIf(style lipgloss.Style, s string, colored bool) string {
	if !colored {
		return s
	}
	return style.Render(s)
}
