// Public domain.

// Package mapcmd implements a command to draw an all-sky map of the
// model dispersion measure.
package mapcmd

import (
	"image/png"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/soniakeys/unit"

	"github.com/shreetamapradhan/pygedm/internal/gedmcfg"
	"github.com/shreetamapradhan/pygedm/skymap"
)

var Command = &command.Command{
	Usage: `map [-c|--columns <value>] [--dist <kpc>] [--scale <name>]
	[--vmax <value>] [--cpu <number>] [--data <dir>] [--config <file>]
	-o|--output <image-file>`,
	Short: "draw an all-sky map of the model dispersion measure",
	Long: `
Command map integrates the NE2001 model out to a fixed distance on
every line of sight of a plate carrée (equirectangular) grid in
galactic coordinates, and writes the resulting dispersion-measure map
as a PNG image. The galactic center is at the image center.

The flag --output, or -o, is required and gives the image file name.

By default the model is integrated out to 30 kpc, effectively through
the whole galaxy; use --dist for a different distance. The image is
360 columns wide by default; use --columns, or -c, for a finer grid.
Every pixel is one model invocation, so large grids take a while. The
rows are computed in parallel; use --cpu to limit the number of
concurrent invocations.

Colors scale linearly up to the 0.99 quantile of the map, so the
galactic-center sightlines do not flatten everything else; --vmax sets
an explicit top value instead. The flag --scale picks the color
scheme: rainbow (the default), incandescent, or gray.

The flag --data overrides the NE2001 data directory; --config names an
alternative configuration file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var colsFlag int
var distFlag float64
var vmaxFlag float64
var numCPU int
var scale string
var output string
var dataDir string
var cfgFile string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&colsFlag, "columns", 360, "")
	c.Flags().IntVar(&colsFlag, "c", 360, "")
	c.Flags().Float64Var(&distFlag, "dist", 30, "")
	c.Flags().Float64Var(&vmaxFlag, "vmax", 0, "")
	c.Flags().IntVar(&numCPU, "cpu", 0, "")
	c.Flags().StringVar(&scale, "scale", "rainbow", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&dataDir, "data", "", "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
}

func run(c *command.Command, args []string) error {
	if output == "" {
		return c.UsageError("expecting output image file, flag --output")
	}
	grad, ok := skymap.Scales[strings.ToLower(scale)]
	if !ok {
		return c.UsageError("unknown color scale: " + scale)
	}
	cfg, err := gedmcfg.Load(cfgFile)
	if err != nil {
		return err
	}
	m, err := cfg.Open(dataDir)
	if err != nil {
		return err
	}

	grid, err := skymap.Compute(func(l, b unit.Angle) (float64, error) {
		dm, _, err := m.DistToDM(l, b, distFlag)
		return dm, err
	}, colsFlag, numCPU)
	if err != nil {
		return err
	}

	img := &skymap.Image{Grid: grid, VMax: vmaxFlag, Gradient: grad}
	img.Format()

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return nil
}
