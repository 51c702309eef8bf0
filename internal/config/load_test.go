package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValuesFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "zoneplan.yaml")
		data := []byte("region: eu-central-1\nparentCidr: 172.16.0.0/16\nextraBits: 4\npreferredSubnetCount: 2\nmapPublicIp: true\n")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		values, err := LoadValuesFile(path)
		require.NoError(t, err)

		cfg, err := Resolve(Defaults(), values, nil)
		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", cfg.Region)
		assert.Equal(t, "172.16.0.0/16", cfg.ParentCIDR.String())
		assert.Equal(t, uint(4), cfg.ExtraBits)
		require.NotNil(t, cfg.PreferredSubnetCount)
		assert.Equal(t, uint(2), *cfg.PreferredSubnetCount)
		assert.True(t, cfg.MapPublicIP)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadValuesFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "zoneplan.yaml")
		require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0o644))

		_, err := LoadValuesFile(path)
		assert.Error(t, err)
	})

	t.Run("empty file yields empty layer", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "zoneplan.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		values, err := LoadValuesFile(path)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFilename), []byte("region: eu-west-1\n"), 0o644))

	t.Chdir(sub)

	path, err := FindConfigFile()
	require.NoError(t, err)

	// Resolve symlinks so macOS /private/var temp dirs compare equal.
	want, err := filepath.EvalSymlinks(filepath.Join(dir, DefaultConfigFilename))
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "zoneplan.yaml")
	values := Values{
		"region":     "us-east-1",
		"parentCidr": "192.168.0.0/16",
		"extraBits":  uint(6),
	}
	require.NoError(t, Save(values, path))

	loaded, err := LoadValuesFile(path)
	require.NoError(t, err)

	cfg, err := Resolve(Defaults(), loaded, nil)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "192.168.0.0/16", cfg.ParentCIDR.String())
	assert.Equal(t, uint(6), cfg.ExtraBits)
}
