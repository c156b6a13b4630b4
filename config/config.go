// Package config provides run configuration loaded from a YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jorge-borbinha/ReadPhantom/errors"
)

// Phantom input formats.
const (
	FormatBinary = "binary"
	FormatASCII  = "ascii"
)

// Config represents a full conversion run.
type Config struct {
	Phantom struct {
		// Path to the organ-ID file; a ".gz" suffix is decompressed
		// transparently.
		Path string `yaml:"path"`

		// Format is "binary" (one unsigned byte per voxel) or "ascii"
		// (whitespace-delimited integers).
		Format string `yaml:"format"`

		// Voxels holds the grid dimensions nx, ny, nz.
		Voxels struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
			Z int `yaml:"z"`
		} `yaml:"voxels"`

		// Resolution holds the physical voxel size per axis in cm.
		Resolution struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		} `yaml:"resolution"`

		// Materials is the number of distinct materials in the phantom.
		Materials int `yaml:"materials"`
	} `yaml:"phantom"`

	OrganList struct {
		Path     string   `yaml:"path"`
		SkipRows int      `yaml:"skipRows"`
		Columns  []string `yaml:"columns"`

		// Role columns, matched by name against Columns.
		OrganColumn    string `yaml:"organColumn"`
		MaterialColumn string `yaml:"materialColumn"`
		DensityColumn  string `yaml:"densityColumn"`
	} `yaml:"organlist"`

	Output struct {
		Vox          string `yaml:"vox"`
		ProjectionXY string `yaml:"projectionXY"`
		ProjectionXZ string `yaml:"projectionXZ"`
		ProjectionYZ string `yaml:"projectionYZ"`
	} `yaml:"output"`

	LoggingLevel string `yaml:"loggingLevel"`
}

// Default returns the configuration defaults of the original organ
// list layout and output naming.
func Default() *Config {
	config := &Config{}
	config.Phantom.Format = FormatBinary
	config.OrganList.SkipRows = 4
	config.OrganList.Columns = []string{"Organ_ID", "Organ", "Material_ID", "Density"}
	config.OrganList.OrganColumn = "Organ_ID"
	config.OrganList.MaterialColumn = "Material_ID"
	config.OrganList.DensityColumn = "Density"
	config.Output.Vox = "phantom.vox"
	config.Output.ProjectionXY = "ct-den-matXY.dat"
	config.Output.ProjectionXZ = "ct-den-matXZ.dat"
	config.Output.ProjectionYZ = "ct-den-matYZ.dat"
	config.LoggingLevel = "info"
	return config
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that the configuration can produce a meaningful
// phantom. Every violation is fatal; nothing is written when
// validation fails.
func (c *Config) Validate() error {
	if c.Phantom.Path == "" {
		return errors.NewInvalidConfiguration("phantom path is empty")
	}
	if c.Phantom.Format != FormatBinary && c.Phantom.Format != FormatASCII {
		return errors.NewInvalidConfiguration(
			"unknown phantom format %q, expected %q or %q",
			c.Phantom.Format, FormatBinary, FormatASCII,
		)
	}
	if c.Phantom.Voxels.X <= 0 || c.Phantom.Voxels.Y <= 0 || c.Phantom.Voxels.Z <= 0 {
		return errors.NewInvalidConfiguration(
			"voxel counts must be positive, got %d %d %d",
			c.Phantom.Voxels.X, c.Phantom.Voxels.Y, c.Phantom.Voxels.Z,
		)
	}
	if c.Phantom.Resolution.X <= 0 || c.Phantom.Resolution.Y <= 0 || c.Phantom.Resolution.Z <= 0 {
		return errors.NewInvalidConfiguration(
			"voxel resolutions must be positive, got %g %g %g",
			c.Phantom.Resolution.X, c.Phantom.Resolution.Y, c.Phantom.Resolution.Z,
		)
	}
	if c.Phantom.Materials <= 1 {
		return errors.NewInvalidConfiguration("the number of materials must be larger than 1")
	}
	if c.OrganList.Path == "" {
		return errors.NewInvalidConfiguration("organ list path is empty")
	}
	if err := c.validateOrganColumns(); err != nil {
		return err
	}
	for _, path := range []string{
		c.Output.Vox, c.Output.ProjectionXY, c.Output.ProjectionXZ, c.Output.ProjectionYZ,
	} {
		if path == "" {
			return errors.NewInvalidConfiguration("output file names must not be empty")
		}
	}
	if !validateLoggingLevel(c.LoggingLevel) {
		return errors.NewInvalidConfiguration(
			"unknown logging level %q, expected one of: %s",
			c.LoggingLevel, availableLoggingLevelsString,
		)
	}
	return nil
}

func (c *Config) validateOrganColumns() error {
	for _, role := range []string{
		c.OrganList.OrganColumn, c.OrganList.MaterialColumn, c.OrganList.DensityColumn,
	} {
		if !containsColumn(c.OrganList.Columns, role) {
			return errors.NewInvalidConfiguration(
				"role column %q not present in organ list columns %v",
				role, c.OrganList.Columns,
			)
		}
	}
	return nil
}

func containsColumn(columns []string, name string) bool {
	for _, column := range columns {
		if column == name {
			return true
		}
	}
	return false
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
