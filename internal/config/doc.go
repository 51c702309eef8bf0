// Package config resolves the variables that drive a subnet plan.
//
// Variables are layered from three sources in increasing priority:
// compiled-in defaults, a zoneplan.yaml values file, and explicit
// overrides (CLI flags and ZONEPLAN_* environment variables). The result
// is an immutable Configuration, built once per run before any external
// call is made.
package config
