package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-borbinha/ReadPhantom/errors"
)

const configContent = `phantom:
  path: adult_male.dat
  format: binary
  voxels: {x: 299, y: 137, z: 348}
  resolution: {x: 0.21, y: 0.21, z: 0.8}
  materials: 53
organlist:
  path: organlist.dat
loggingLevel: debug
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readphantom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configContent), 0644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "adult_male.dat", config.Phantom.Path)
	assert.Equal(t, FormatBinary, config.Phantom.Format)
	assert.Equal(t, 299, config.Phantom.Voxels.X)
	assert.Equal(t, 137, config.Phantom.Voxels.Y)
	assert.Equal(t, 348, config.Phantom.Voxels.Z)
	assert.Equal(t, 0.8, config.Phantom.Resolution.Z)
	assert.Equal(t, 53, config.Phantom.Materials)
	assert.Equal(t, "debug", config.LoggingLevel)

	// Unset keys keep their defaults.
	assert.Equal(t, 4, config.OrganList.SkipRows)
	assert.Equal(t, "Organ_ID", config.OrganList.OrganColumn)
	assert.Equal(t, "phantom.vox", config.Output.Vox)
	assert.Equal(t, "ct-den-matYZ.dat", config.Output.ProjectionYZ)

	assert.NoError(t, config.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func validConfig() *Config {
	config := Default()
	config.Phantom.Path = "phantom.dat"
	config.Phantom.Voxels.X = 2
	config.Phantom.Voxels.Y = 2
	config.Phantom.Voxels.Z = 2
	config.Phantom.Resolution.X = 0.1
	config.Phantom.Resolution.Y = 0.1
	config.Phantom.Resolution.Z = 0.1
	config.Phantom.Materials = 2
	config.OrganList.Path = "organlist.dat"
	return config
}

func TestValidate(t *testing.T) {
	type testCase struct {
		Name   string
		Mutate func(*Config)
	}

	testCases := []testCase{
		testCase{"empty phantom path", func(c *Config) { c.Phantom.Path = "" }},
		testCase{"unknown format", func(c *Config) { c.Phantom.Format = "hex" }},
		testCase{"zero voxel count", func(c *Config) { c.Phantom.Voxels.Y = 0 }},
		testCase{"negative resolution", func(c *Config) { c.Phantom.Resolution.Z = -0.8 }},
		testCase{"single material", func(c *Config) { c.Phantom.Materials = 1 }},
		testCase{"empty organ list path", func(c *Config) { c.OrganList.Path = "" }},
		testCase{"role column not declared", func(c *Config) { c.OrganList.DensityColumn = "Mass" }},
		testCase{"empty output name", func(c *Config) { c.Output.ProjectionXZ = "" }},
		testCase{"unknown logging level", func(c *Config) { c.LoggingLevel = "verbose" }},
	}

	assert.NoError(t, validConfig().Validate())
	for _, tc := range testCases {
		config := validConfig()
		tc.Mutate(config)
		assert.IsType(t, errors.InvalidConfiguration{}, config.Validate(), tc.Name)
	}
}
