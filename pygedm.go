// Public domain.

package pygedm

import (
	"math"
	"os"

	"github.com/soniakeys/coord"
	mcoord "github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/unit"

	"github.com/shreetamapradhan/pygedm/nedata"
	"github.com/shreetamapradhan/pygedm/nemodel"
	"github.com/shreetamapradhan/pygedm/nemodel/ne2001exec"
)

// NoModelEnv, when set to a non-empty value, makes New return a model
// backed by the all-zero stand-in instead of the compiled NE2001
// programs.  For documentation and build environments only.
const NoModelEnv = "PYGEDM_NOMODEL"

// ReferenceNu is the frequency, in GHz, at which scattering timescales
// are reported.
const ReferenceNu = 1.0

// Inputs are coerced to 32-bit floats before reaching the compiled
// routine; a magnitude at or below zeroTol after coercion is the
// degenerate case that must not reach it (the routine loops
// indefinitely on zero input).
const zeroTol = 1e-8

// Model is the pygedm facade over one NE2001 capability.
//
// Methods are as safe for concurrent use as the underlying capability:
// the subprocess driver installed by New is parallel-safe, while an
// in-process model wrapped by NewInDir is serialized on the working
// directory.
type Model struct {
	ne nemodel.Model
}

// New returns a model backed by the compiled NE2001 programs found in
// the given data directory.  An empty dataDir resolves through
// nedata.Root.  If the PYGEDM_NOMODEL environment variable is set the
// data directory is not consulted and the all-zero stand-in is
// installed instead.
func New(dataDir string) (*Model, error) {
	if os.Getenv(NoModelEnv) > "" {
		return NewWithModel(nemodel.Null{}), nil
	}
	dir, err := nedata.Root(dataDir)
	if err != nil {
		return nil, err
	}
	if err := nedata.Check(dir); err != nil {
		return nil, err
	}
	return NewWithModel(ne2001exec.New(dir)), nil
}

// NewWithModel returns a model backed by an arbitrary NE2001
// capability, typically a test stand-in or an in-process build.
func NewWithModel(ne nemodel.Model) *Model {
	return &Model{ne: ne}
}

// NewInDir is NewWithModel for an in-process capability that resolves
// its data files against the process working directory.  Every call is
// run under the workdir guard with the working directory set to dir.
func NewInDir(ne nemodel.Model, dir string) *Model {
	return NewWithModel(nemodel.InDir(ne, dir))
}

// A Conversion holds one DM/distance conversion.
type Conversion struct {
	DM     float64   // dispersion measure, pc cm^-3
	DistPc float64   // distance, pc
	TauSc  unit.Time // scattering timescale at ReferenceNu, seconds

	// Limit reports that the line of sight left the model before the
	// requested quantity was reached; the converted quantity is then a
	// lower limit.
	Limit bool
}

// ConvertDM converts a dispersion measure along the line of sight l, b
// to a distance and the scattering timescale.
//
// A dm of zero short-circuits to a zero result without invoking the
// model.  This is an operational workaround: the compiled routine
// hangs on zero input.
func (m *Model) ConvertDM(l, b unit.Angle, dm float64) (Conversion, error) {
	dm32 := float32(dm)
	if math.Abs(float64(dm32)) <= zeroTol {
		return Conversion{}, nil
	}
	r, err := m.ne.Solve(l.Rad(), b.Rad(), nemodel.DMToDist, dm32, 0)
	if err != nil {
		return Conversion{}, err
	}
	distKpc := float64(r.Dist)
	return Conversion{
		DM:     dm,
		DistPc: distKpc * 1e3,
		TauSc:  unit.Time(TauISS(distKpc, r.SMTau, ReferenceNu)),
		Limit:  r.Limit == '>',
	}, nil
}

// ConvertDist converts a distance in kpc along the line of sight l, b
// to a dispersion measure and the scattering timescale.  A distance of
// zero short-circuits as in ConvertDM.
func (m *Model) ConvertDist(l, b unit.Angle, distKpc float64) (Conversion, error) {
	d32 := float32(distKpc)
	if math.Abs(float64(d32)) <= zeroTol {
		return Conversion{}, nil
	}
	r, err := m.ne.Solve(l.Rad(), b.Rad(), nemodel.DistToDM, 0, d32)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		DM:     float64(r.DM),
		DistPc: float64(d32) * 1e3,
		TauSc:  unit.Time(TauISS(float64(d32), r.SMTau, ReferenceNu)),
		Limit:  r.Limit == '>',
	}, nil
}

// DMToDist is ConvertDM reduced to the distance, in pc, and the
// scattering timescale at 1 GHz, in seconds.
func (m *Model) DMToDist(l, b unit.Angle, dm float64) (distPc float64, tauSc unit.Time, err error) {
	cv, err := m.ConvertDM(l, b, dm)
	if err != nil {
		return 0, 0, err
	}
	return cv.DistPc, cv.TauSc, nil
}

// DistToDM is ConvertDist reduced to the dispersion measure, in
// pc cm^-3, and the scattering timescale at 1 GHz, in seconds.
func (m *Model) DistToDM(l, b unit.Angle, distKpc float64) (dm float64, tauSc unit.Time, err error) {
	cv, err := m.ConvertDist(l, b, distKpc)
	if err != nil {
		return 0, 0, err
	}
	return cv.DM, cv.TauSc, nil
}

// ElectronDensityXYZ evaluates the model electron density, in cm^-3,
// at a galactocentric cartesian position in kpc.  The axes parallel
// (l, b) = (90°, 0), (180°, 0) and (0, 90°).
func (m *Model) ElectronDensityXYZ(x, y, z float64) (float64, error) {
	d, err := m.ne.Density(coord.Cart{X: x, Y: y, Z: z})
	if err != nil {
		return 0, err
	}
	return d.Ne(), nil
}

// DensityXYZ is ElectronDensityXYZ keeping the full component
// breakdown.
func (m *Model) DensityXYZ(x, y, z float64) (nemodel.DensityResult, error) {
	return m.ne.Density(coord.Cart{X: x, Y: y, Z: z})
}

// EqToGal converts J2000.0 equatorial coordinates to galactic
// longitude and latitude.  The position is first precessed to the
// B1950.0 equinox that the galactic pole definition is referred to.
func EqToGal(ra, dec unit.Angle) (l, b unit.Angle) {
	eq := &mcoord.Equatorial{RA: unit.RA(ra.Rad()), Dec: dec}
	var eq50 mcoord.Equatorial
	precess.Position(eq, &eq50, 2000, 1950, 0, 0)
	var g mcoord.Galactic
	g.EqToGal(&eq50)
	return g.Lon, g.Lat
}
