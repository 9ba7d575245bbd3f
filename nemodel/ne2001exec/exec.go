// Public domain.

// Package ne2001exec drives the compiled NE2001 programs as
// subprocesses.
//
// The NE2001 distribution builds two small console programs, NE2001
// and density, which resolve their model-parameter files (gal01.inp,
// ne_arms_log_mod.inp and friends) relative to the directory they are
// started in.  The driver therefore starts each child in the data
// directory; the process working directory of the caller is never
// touched.
//
// Both programs print one value per line followed by a label, with
// comment lines introduced by '#':
//
//	#NE2001 output
//	   2.5170  DIST (kpc)
//	 100.0000  DM (pc-cm^{-3})
//	 1.23e-03  SM (kpc-m^{-20/3})
//	   ...
//
// A '>' before the DIST value marks a lower limit, reported when the
// line of sight leaves the model before reaching the given DM.
package ne2001exec

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/soniakeys/coord"

	"github.com/shreetamapradhan/pygedm/nemodel"
)

// Default executable names, resolved against Dir first, then PATH.
const (
	DefaultNE2001  = "NE2001"
	DefaultDensity = "density"
)

// Driver invokes the compiled NE2001 programs.  Driver is safe for
// concurrent use: each call runs its own child process and no process
// state is shared.
type Driver struct {
	Dir        string // data directory, working directory of the children
	NE2001     string // NE2001 executable, default "NE2001"
	DensityBin string // density executable, default "density"
}

// New returns a driver over the given data directory with default
// executable names.
func New(dir string) *Driver {
	return &Driver{Dir: dir, NE2001: DefaultNE2001, DensityBin: DefaultDensity}
}

// Solve runs the NE2001 program for the line of sight l, b in radians.
// The program takes degrees on its command line, so the driver converts
// at the boundary.
func (d *Driver) Solve(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error) {
	known := dm
	if ndir < 0 {
		known = dist
	}
	out, err := d.run(d.NE2001,
		formatDeg(l), formatDeg(b),
		strconv.FormatFloat(float64(known), 'f', 4, 32),
		strconv.Itoa(ndir))
	if err != nil {
		return nemodel.SolveResult{}, err
	}
	return parseSolve(out)
}

// Density runs the density program at a galactocentric position in kpc.
func (d *Driver) Density(p coord.Cart) (nemodel.DensityResult, error) {
	out, err := d.run(d.DensityBin,
		strconv.FormatFloat(p.X, 'f', 4, 64),
		strconv.FormatFloat(p.Y, 'f', 4, 64),
		strconv.FormatFloat(p.Z, 'f', 4, 64))
	if err != nil {
		return nemodel.DensityResult{}, err
	}
	return parseDensity(out)
}

func (d *Driver) run(name string, args ...string) ([]byte, error) {
	path := name
	if !strings.ContainsRune(name, '/') {
		// prefer an executable kept beside the data files.
		// "./name" is evaluated relative to cmd.Dir.
		if _, err := os.Stat(filepath.Join(d.Dir, name)); err == nil {
			path = "./" + name
		}
	}
	cmd := exec.Command(path, args...)
	cmd.Dir = d.Dir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %w: %s",
				name, err, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

func formatDeg(rad float64) string {
	return strconv.FormatFloat(rad*180/math.Pi, 'f', 6, 64)
}
