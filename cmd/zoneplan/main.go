// Package main is the entry point for the zoneplan CLI.
//
// zoneplan plans a VPC's subnets across a region's availability zones:
// it resolves layered configuration, queries the zone inventory, derives
// one deterministic non-overlapping CIDR per subnet, and emits the
// ordered descriptor sequence for a provisioning backend.
//
// Commands: plan, init, version, completion.
//
// For detailed usage information, run:
//
//	zoneplan --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/zoneplan/cmd/zoneplan/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
