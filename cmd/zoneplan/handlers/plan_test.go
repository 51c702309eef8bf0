package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/imamik/zoneplan/internal/config"
	"github.com/imamik/zoneplan/internal/platform/ec2"
)

// stubLister returns a canned zone list.
type stubLister struct {
	zones []string
	err   error
	calls int
}

func (s *stubLister) ListZones(_ context.Context, _ string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.zones, nil
}

func setupPlanTest(t *testing.T, lister *stubLister) *bytes.Buffer {
	t.Helper()
	saveAndRestoreFactories(t)

	out := &bytes.Buffer{}
	stdout = out
	colored = func() bool { return false }
	findConfigFile = func() (string, error) { return "", errors.New("not found") }
	envOverrides = func() (config.Values, error) { return config.Values{}, nil }
	newZoneLister = func(_ context.Context) (ec2.ZoneLister, error) { return lister, nil }

	return out
}

func TestPlan_TableOutput(t *testing.T) {
	lister := &stubLister{zones: []string{"eu-central-1a", "eu-central-1b", "eu-central-1c"}}
	out := setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{
		Overrides: config.Values{
			"region":               "eu-central-1",
			"parentCidr":           "172.16.0.0/16",
			"extraBits":            uint(4),
			"preferredSubnetCount": uint(2),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, lister.calls)
	assert.Contains(t, out.String(), "172.16.0.0/20")
	assert.Contains(t, out.String(), "172.16.16.0/20")
	assert.Contains(t, out.String(), "eu-central-1a")
	assert.NotContains(t, out.String(), "eu-central-1c")
}

func TestPlan_JSONOutput(t *testing.T) {
	lister := &stubLister{zones: []string{"us-east-1a", "us-east-1b"}}
	out := setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{
		Overrides: config.Values{"region": "us-east-1"},
		Output:    "json",
	})
	require.NoError(t, err)

	var plan struct {
		Region  string `json:"region"`
		Subnets []struct {
			Index int    `json:"index"`
			CIDR  string `json:"cidr"`
			Zone  string `json:"zone"`
		} `json:"subnets"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, "us-east-1", plan.Region)
	require.Len(t, plan.Subnets, 2)
	assert.Equal(t, "10.0.0.0/24", plan.Subnets[0].CIDR)
	assert.Equal(t, "us-east-1a", plan.Subnets[0].Zone)
	assert.Equal(t, "10.0.1.0/24", plan.Subnets[1].CIDR)
}

func TestPlan_YAMLOutput(t *testing.T) {
	lister := &stubLister{zones: []string{"us-east-1a"}}
	out := setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{Output: "yaml"})
	require.NoError(t, err)

	var plan map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &plan))
	assert.Contains(t, plan, "subnets")
}

func TestPlan_FixedZonesSkipInventory(t *testing.T) {
	lister := &stubLister{err: errors.New("must not be called")}
	out := setupPlanTest(t, lister)
	newZoneLister = func(_ context.Context) (ec2.ZoneLister, error) {
		t.Fatal("live inventory must not be constructed with --zones")
		return nil, nil
	}

	err := Plan(context.Background(), PlanOptions{
		Zones: []string{"zone-a", "zone-b"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "zone-a")
	assert.Equal(t, 0, lister.calls)
}

func TestPlan_CatalogUnavailable(t *testing.T) {
	lister := &stubLister{err: &ec2.CatalogUnavailableError{Region: "eu-central-1", Err: errors.New("auth")}}
	out := setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{})
	require.Error(t, err)
	assert.True(t, ec2.IsCatalogUnavailable(err))
	assert.Empty(t, out.String(), "no partial output on failure")
}

func TestPlan_ExpansionFailureWritesNothing(t *testing.T) {
	lister := &stubLister{zones: []string{"eu-central-1a", "eu-central-1b", "eu-central-1c"}}
	out := setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{
		Overrides: config.Values{
			"extraBits":            uint(1),
			"preferredSubnetCount": uint(3),
		},
	})
	require.Error(t, err)
	assert.Empty(t, out.String(), "no partial output on failure")
}

func TestPlan_ValuesFileAndOverridePrecedence(t *testing.T) {
	lister := &stubLister{zones: []string{"eu-west-1a"}}
	out := setupPlanTest(t, lister)
	findConfigFile = func() (string, error) { return "zoneplan.yaml", nil }
	loadValuesFile = func(_ string) (config.Values, error) {
		return config.Values{"region": "eu-west-1", "preferredSubnetCount": 1}, nil
	}
	envOverrides = func() (config.Values, error) {
		return config.Values{"region": "ap-southeast-1"}, nil
	}

	// Flag layer beats both the values file and the environment.
	err := Plan(context.Background(), PlanOptions{
		Overrides: config.Values{"region": "us-west-2"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "us-west-2")
}

func TestPlan_UnknownOutputFormat(t *testing.T) {
	lister := &stubLister{zones: []string{"eu-central-1a"}}
	setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{Output: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestPlan_UnknownVariableFailsBeforeInventory(t *testing.T) {
	lister := &stubLister{zones: []string{"eu-central-1a"}}
	setupPlanTest(t, lister)

	err := Plan(context.Background(), PlanOptions{
		Overrides: config.Values{"instanceType": "t3.micro"},
	})
	require.Error(t, err)
	assert.True(t, config.IsUnknownVariable(err))
	assert.Equal(t, 0, lister.calls, "configuration errors abort before any external call")
}
