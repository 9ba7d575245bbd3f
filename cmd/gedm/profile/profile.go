// Public domain.

// Package profile implements a command to plot the run of dispersion
// measure with distance along one line of sight.
package profile

import (
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/soniakeys/unit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/shreetamapradhan/pygedm"
	"github.com/shreetamapradhan/pygedm/internal/gedmcfg"
)

var Command = &command.Command{
	Usage: `profile [--eq] [--max <kpc>] [--step <kpc>]
	[--data <dir>] [--config <file>] -o|--output <image-file>
	<lon> <lat>`,
	Short: "plot dispersion measure against distance",
	Long: `
Command profile integrates the NE2001 model along one line of sight at
a series of distances and plots the accumulated dispersion measure
against distance.

The arguments are the galactic longitude and latitude in degrees. With
the flag --eq they are read instead as J2000 right ascension and
declination in degrees and converted to galactic coordinates.

The flag --output, or -o, is required and gives the image file name.
The profile runs out to 30 kpc in 0.1 kpc steps by default; change
with --max and --step. Each step is one model invocation.

The flag --data overrides the NE2001 data directory; --config names an
alternative configuration file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var eqFlag bool
var maxDist float64
var step float64
var output string
var dataDir string
var cfgFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&eqFlag, "eq", false, "")
	c.Flags().Float64Var(&maxDist, "max", 30, "")
	c.Flags().Float64Var(&step, "step", 0.1, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&dataDir, "data", "", "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 2 {
		return c.UsageError("expecting <lon> <lat>")
	}
	if output == "" {
		return c.UsageError("expecting output image file, flag --output")
	}
	if step <= 0 || maxDist <= 0 {
		return c.UsageError("--max and --step must be positive")
	}
	var v [2]float64
	for i, a := range args {
		var err error
		if v[i], err = strconv.ParseFloat(a, 64); err != nil {
			return c.UsageError("invalid numeric argument: " + a)
		}
	}
	cfg, err := gedmcfg.Load(cfgFile)
	if err != nil {
		return err
	}
	m, err := cfg.Open(dataDir)
	if err != nil {
		return err
	}

	l, b := sky(v[0], v[1], eqFlag)
	var pts plotter.XYs
	for d := step; d <= maxDist+step/2; d += step {
		dm, _, err := m.DistToDM(l, b, d)
		if err != nil {
			return err
		}
		pts = append(pts, plotter.XY{X: d, Y: dm})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("NE2001  l = %.3f°  b = %.3f°", l.Deg(), b.Deg())
	p.X.Label.Text = "distance (kpc)"
	p.Y.Label.Text = "DM (pc cm^-3)"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, output); err != nil {
		return err
	}
	return nil
}

func sky(x, y float64, eq bool) (l, b unit.Angle) {
	if eq {
		return pygedm.EqToGal(unit.AngleFromDeg(x), unit.AngleFromDeg(y))
	}
	return unit.AngleFromDeg(x), unit.AngleFromDeg(y)
}
