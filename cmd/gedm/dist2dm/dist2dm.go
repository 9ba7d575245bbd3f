// Public domain.

// Package dist2dm implements a command to convert a distance to a
// dispersion measure.
package dist2dm

import (
	"fmt"
	"math"
	"strconv"

	"github.com/js-arias/command"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/shreetamapradhan/pygedm"
	"github.com/shreetamapradhan/pygedm/internal/gedmcfg"
)

var Command = &command.Command{
	Usage: `dist2dm [--eq] [--nu <ghz>] [--data <dir>] [--config <file>]
	<lon> <lat> <dist>`,
	Short: "convert a distance to a dispersion measure",
	Long: `
Command dist2dm integrates the NE2001 model along the line of sight out
to the given distance (in kpc) and prints the accumulated dispersion
measure together with the expected pulse-broadening timescale.

The arguments are the galactic longitude and latitude in degrees and
the distance in kpc. With the flag --eq the first two arguments are
read instead as J2000 right ascension and declination in degrees and
converted to galactic coordinates.

The scattering timescale is reported at 1 GHz. The flag --nu, or the
"nu" configuration keyword, rescales it to another frequency using the
nu^-4.4 Kolmogorov scaling.

The flag --data overrides the NE2001 data directory; --config names an
alternative configuration file.

A dispersion measure marked ">" is a lower limit: the line of sight
left the model before reaching the given distance.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var eqFlag bool
var nuFlag float64
var dataDir string
var cfgFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&eqFlag, "eq", false, "")
	c.Flags().Float64Var(&nuFlag, "nu", 0, "")
	c.Flags().StringVar(&dataDir, "data", "", "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 3 {
		return c.UsageError("expecting <lon> <lat> <dist>")
	}
	var v [3]float64
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
	cv, err := m.ConvertDist(l, b, v[2])
	if err != nil {
		return err
	}

	nu := cfg.Nu
	if nuFlag > 0 {
		nu = nuFlag
	}
	tauNu := cv.TauSc.Sec() * math.Pow(nu/pygedm.ReferenceNu, -4.4)

	lim := ""
	if cv.Limit {
		lim = "> "
	}
	fmt.Fprintf(c.Stdout(), "l, b:   %v  %v\n", sexa.FmtAngle(l), sexa.FmtAngle(b))
	fmt.Fprintf(c.Stdout(), "DIST:   %.4f kpc\n", v[2])
	fmt.Fprintf(c.Stdout(), "DM:     %s%.4f pc cm^-3\n", lim, cv.DM)
	fmt.Fprintf(c.Stdout(), "TAU_SC: %.4e s (at %g GHz)\n", tauNu, nu)
	return nil
}

func sky(x, y float64, eq bool) (l, b unit.Angle) {
	if eq {
		return pygedm.EqToGal(unit.AngleFromDeg(x), unit.AngleFromDeg(y))
	}
	return unit.AngleFromDeg(x), unit.AngleFromDeg(y)
}
