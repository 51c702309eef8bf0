package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	cmd := Plan()

	require.NotNil(t, cmd)
	assert.Equal(t, "plan", cmd.Use)
	assert.NotNil(t, cmd.RunE, "plan command should have RunE function")
}

func TestPlan_Flags(t *testing.T) {
	cmd := Plan()

	for _, name := range []string{
		"config", "region", "parent-cidr", "extra-bits", "count",
		"public-ip", "vpc-ref", "name-tag", "zones", "output", "verbose",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "%s flag should exist", name)
	}

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "table", output.DefValue)

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
}
