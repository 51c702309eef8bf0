// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/imamik/zoneplan/internal/catalog"
	"github.com/imamik/zoneplan/internal/config"
	"github.com/imamik/zoneplan/internal/planner"
	"github.com/imamik/zoneplan/internal/platform/ec2"
	"github.com/imamik/zoneplan/internal/ui"
)

// PlanOptions carries the plan command's inputs.
type PlanOptions struct {
	// ConfigPath is the values file; empty means auto-detect.
	ConfigPath string
	// Overrides is the flag layer, highest priority.
	Overrides config.Values
	// Zones bypasses the live inventory with a fixed list when non-empty.
	Zones []string
	// Output is table, json or yaml.
	Output string
	// Verbose enables debug logging.
	Verbose bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newZoneLister creates the live zone inventory client.
	newZoneLister = func(ctx context.Context) (ec2.ZoneLister, error) {
		return ec2.NewClient(ctx)
	}

	// loadValuesFile loads the values file (for testing injection).
	loadValuesFile = config.LoadValuesFile

	// findConfigFile locates the default values file (for testing injection).
	findConfigFile = config.FindConfigFile

	// envOverrides reads the ZONEPLAN_* environment layer (for testing injection).
	envOverrides = config.EnvOverrides

	// stdout is the plan's destination (for testing injection).
	stdout io.Writer = os.Stdout

	// colored reports whether table output should carry color.
	colored = func() bool { return ui.IsTerminal(os.Stdout) }
)

// Plan resolves the configuration, queries the zone inventory once, and
// prints the expanded subnet plan.
//
// Nothing is written until the whole plan has been built: a failing
// expansion produces no partial output.
func Plan(ctx context.Context, opts PlanOptions) error {
	log := newLogger(opts.Verbose)
	defer func() { _ = log.Sync() }()

	valuesFile, err := loadValues(opts.ConfigPath, log)
	if err != nil {
		return err
	}

	env, err := envOverrides()
	if err != nil {
		return err
	}
	// Flags beat environment variables within the override layer.
	overrides := make(config.Values, len(env)+len(opts.Overrides))
	for name, value := range env {
		overrides[name] = value
	}
	for name, value := range opts.Overrides {
		overrides[name] = value
	}

	cfg, err := config.Resolve(config.Defaults(), valuesFile, overrides)
	if err != nil {
		return err
	}

	var zones planner.ZoneSource
	if len(opts.Zones) > 0 {
		log.Debug("using fixed zone list", zap.Strings("zones", opts.Zones))
		zones = catalog.Static(opts.Zones)
	} else {
		lister, err := newZoneLister(ctx)
		if err != nil {
			return err
		}
		zones = catalog.New(lister, log)
	}

	plan, err := planner.New(cfg, zones, log).Plan(ctx)
	if err != nil {
		return err
	}

	return writePlan(plan, opts.Output)
}

// loadValues loads the values file, auto-detecting zoneplan.yaml when no
// path is given. A missing default file is not an error: the compiled-in
// defaults alone describe a valid run.
func loadValues(path string, log *zap.Logger) (config.Values, error) {
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			log.Debug("no values file found, using defaults")
			return config.Values{}, nil
		}
		path = found
	}
	log.Debug("loading values file", zap.String("path", path))
	return loadValuesFile(path)
}

// writePlan renders the plan in the requested format.
func writePlan(plan *planner.Plan, output string) error {
	switch output {
	case "", "table":
		_, err := fmt.Fprint(stdout, ui.RenderPlan(plan, colored()))
		return err
	case "json":
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		_, err = fmt.Fprintf(stdout, "%s\n", data)
		return err
	case "yaml":
		data, err := yaml.Marshal(plan)
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		_, err = stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", output)
	}
}

// newLogger builds the CLI logger. Quiet by default; --verbose switches
// to a development logger on stderr.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
