// Package cli wires the conversion pipeline behind the readphantom
// command.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	conf "github.com/jorge-borbinha/ReadPhantom/config"
	"github.com/jorge-borbinha/ReadPhantom/phantom"
	"github.com/jorge-borbinha/ReadPhantom/phantomfile"
	"github.com/jorge-borbinha/ReadPhantom/runner"
)

var log = conf.NamedLogger("cli")

// Run executes the readphantom command.
func Run() {
	var configPath string
	var phantomPath string
	var phantomFormat string
	var loggingLevel string

	rootCmd := &cobra.Command{
		Use:   "readphantom",
		Short: "convert a voxel phantom into PENELOPE .vox and ct-den-mat files",
		Long: "Reads a voxelized anatomical phantom and its organ list, builds the " +
			"material/density field and writes the .vox volume for PENELOPE/penEasy " +
			"plus the three ct-den-mat projection files for gnuplot inspection.",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			config, err := conf.Load(configPath)
			if err != nil {
				return err
			}
			if phantomPath != "" {
				config.Phantom.Path = phantomPath
			}
			if phantomFormat != "" {
				config.Phantom.Format = phantomFormat
			}
			if loggingLevel != "" {
				config.LoggingLevel = loggingLevel
			}
			if err := config.Validate(); err != nil {
				return err
			}

			conf.InitLogger(config.LoggingLevel)
			return convert(config)
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "readphantom.yaml", "run configuration file")
	rootCmd.Flags().StringVar(&phantomPath, "phantom", "", "phantom file, overrides the config")
	rootCmd.Flags().StringVar(&phantomFormat, "format", "", "phantom format (binary or ascii), overrides the config")
	rootCmd.Flags().StringVar(&loggingLevel, "logging-level", "", "logging level, overrides the config")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convert(config *conf.Config) error {
	grid := phantom.Grid{
		Nx: config.Phantom.Voxels.X,
		Ny: config.Phantom.Voxels.Y,
		Nz: config.Phantom.Voxels.Z,
		Rx: config.Phantom.Resolution.X,
		Ry: config.Phantom.Resolution.Y,
		Rz: config.Phantom.Resolution.Z,
	}

	log.Infof("Characteristics of the phantom:")
	log.Infof(" > Number of voxels in x,y,z: %d %d %d", grid.Nx, grid.Ny, grid.Nz)
	log.Infof(" > Voxel resolution in x,y,z /cm: %.5f %.5f %.5f", grid.Rx, grid.Ry, grid.Rz)
	log.Infof(" > Phantom size in x,y,z /cm: %.5f %.5f %.5f", grid.LenX(), grid.LenY(), grid.LenZ())
	log.Infof(" > Total number of voxels: %d", grid.VoxelCount())

	rows, err := phantomfile.ReadOrganList(config.OrganList.Path, phantomfile.OrganListLayout{
		Columns:        config.OrganList.Columns,
		SkipRows:       config.OrganList.SkipRows,
		OrganColumn:    config.OrganList.OrganColumn,
		MaterialColumn: config.OrganList.MaterialColumn,
		DensityColumn:  config.OrganList.DensityColumn,
	})
	if err != nil {
		return err
	}
	table := phantom.BuildTable(rows)

	organ, err := phantomfile.ReadOrganField(config.Phantom.Path, config.Phantom.Format)
	if err != nil {
		return err
	}
	log.Infof("Finished loading the phantom file, %d voxels were read", len(organ))

	field, stats, err := phantom.Build(grid, organ, table)
	if err != nil {
		return err
	}
	if stats.NegativeDensities > 0 {
		log.Warnf("%d voxels had a negative density in the organ list; "+
			"each was replaced by its absolute value", stats.NegativeDensities)
	}
	log.Infof(" > Number of materials: %d", config.Phantom.Materials)
	log.Infof(" > Maximum value of material ID: %d", stats.MaxMaterialID)
	log.Infof(" > Maximum value of organ (tag) ID: %d", stats.MaxOrganID)
	log.Infof(" > Maximum density: %.5e", stats.MaxDensity)

	return runner.WriteAll(field, grid, runner.Outputs{
		Vox:          config.Output.Vox,
		ProjectionXY: config.Output.ProjectionXY,
		ProjectionXZ: config.Output.ProjectionXZ,
		ProjectionYZ: config.Output.ProjectionYZ,
	})
}
