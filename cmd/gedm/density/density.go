// Public domain.

// Package density implements a command to evaluate the model electron
// density at a galactocentric position.
package density

import (
	"fmt"
	"strconv"

	"github.com/js-arias/command"

	"github.com/shreetamapradhan/pygedm/internal/gedmcfg"
)

var Command = &command.Command{
	Usage: `density [--all] [--data <dir>] [--config <file>]
	<x> <y> <z>`,
	Short: "evaluate the electron density at a galactocentric position",
	Long: `
Command density evaluates the NE2001 free-electron density at a
galactocentric cartesian position. The arguments are x, y, z in kpc
(not pc), with the axes parallel to (l, b) = (90°, 0), (180°, 0) and
(0, 90°). The sun is near (0, 8.5, 0).

By default the total density, in cm^-3, is printed. The flag --all
also prints the per-structure breakdown: the seven density
contributions (thick disk, thin disk, spiral arms, galactic center,
local ISM, clumps, voids), their blending fractions, and the
membership flags.

The flag --data overrides the NE2001 data directory; --config names an
alternative configuration file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var allFlag bool
var dataDir string
var cfgFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&allFlag, "all", false, "")
	c.Flags().StringVar(&dataDir, "data", "", "")
	c.Flags().StringVar(&cfgFile, "config", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 3 {
		return c.UsageError("expecting <x> <y> <z>")
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

	d, err := m.DensityXYZ(v[0], v[1], v[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "ne: %.6g cm^-3\n", d.Ne())
	if !allFlag {
		return nil
	}
	for _, p := range []struct {
		name string
		ne   float64
		f    float64
	}{
		{"thick disk", d.Ne1, d.F1},
		{"thin disk", d.Ne2, d.F2},
		{"spiral arms", d.Nea, d.Fa},
		{"galactic center", d.Negc, d.Fgc},
		{"local ISM", d.Nelism, d.Flism},
		{"clumps", d.Necn, d.Fcn},
		{"voids", d.Nevn, d.Fvn},
	} {
		fmt.Fprintf(c.Stdout(), "%-16s %12.6g cm^-3  F %g\n", p.name, p.ne, p.f)
	}
	fmt.Fprintf(c.Stdout(), "arm %d  lism %d  ldr %d  lhb %d  lsb %d  loopI %d\n",
		d.WhichArm, d.Wlism, d.Wldr, d.Wlhb, d.Wlsb, d.WloopI)
	fmt.Fprintf(c.Stdout(), "clump %d  void %d  wvoid %d\n",
		d.HitClump, d.HitVoid, d.Wvoid)
	return nil
}
