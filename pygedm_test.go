// Public domain.

package pygedm_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/shreetamapradhan/pygedm"
	"github.com/shreetamapradhan/pygedm/nedata"
	"github.com/shreetamapradhan/pygedm/nemodel"
	"github.com/shreetamapradhan/pygedm/nemodel/ne2001exec"
)

// stub stands in for the compiled model, recording calls.
type stub struct {
	solve   func(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error)
	density func(p coord.Cart) (nemodel.DensityResult, error)

	solves, densities int
}

func (s *stub) Solve(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error) {
	s.solves++
	if s.solve == nil {
		return nemodel.SolveResult{Limit: ' '}, nil
	}
	return s.solve(l, b, ndir, dm, dist)
}

func (s *stub) Density(p coord.Cart) (nemodel.DensityResult, error) {
	s.densities++
	if s.density == nil {
		return nemodel.DensityResult{}, nil
	}
	return s.density(p)
}

// Zero DM and zero distance are the degenerate inputs that hang the
// compiled routine.  They must return zero results without the model
// ever being invoked.
func TestDegenerateZero(t *testing.T) {
	for _, c := range []struct{ lon, lat float64 }{
		{0, 0}, {30.5, -3.2}, {-120, 85}, {359.9, -89.9},
	} {
		st := &stub{}
		m := pygedm.NewWithModel(st)
		l, b := unit.AngleFromDeg(c.lon), unit.AngleFromDeg(c.lat)

		dist, tau, err := m.DMToDist(l, b, 0)
		if err != nil {
			t.Fatal(err)
		}
		if dist != 0 || tau != 0 {
			t.Fatalf("DMToDist(%v, %v, 0) = %g, %g, want 0, 0",
				c.lon, c.lat, dist, tau.Sec())
		}
		dm, tau, err := m.DistToDM(l, b, 0)
		if err != nil {
			t.Fatal(err)
		}
		if dm != 0 || tau != 0 {
			t.Fatalf("DistToDM(%v, %v, 0) = %g, %g, want 0, 0",
				c.lon, c.lat, dm, tau.Sec())
		}
		if st.solves != 0 {
			t.Fatalf("degenerate input reached the model %d times",
				st.solves)
		}
	}
}

func TestSolveArguments(t *testing.T) {
	var gotL, gotB float64
	var gotNdir int
	var gotDM, gotDist float32
	st := &stub{solve: func(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error) {
		gotL, gotB, gotNdir, gotDM, gotDist = l, b, ndir, dm, dist
		return nemodel.SolveResult{Limit: ' ', DM: dm, Dist: 2}, nil
	}}
	m := pygedm.NewWithModel(st)

	if _, _, err := m.DMToDist(unit.AngleFromDeg(90), unit.AngleFromDeg(-45), 100); err != nil {
		t.Fatal(err)
	}
	if gotNdir != nemodel.DMToDist {
		t.Fatal("DMToDist direction flag:", gotNdir)
	}
	if math.Abs(gotL-math.Pi/2) > 1e-15 || math.Abs(gotB+math.Pi/4) > 1e-15 {
		t.Fatalf("angles not converted to radians: l %g b %g", gotL, gotB)
	}
	if gotDM != 100 {
		t.Fatal("dm not passed through:", gotDM)
	}

	if _, _, err := m.DistToDM(unit.AngleFromDeg(90), unit.AngleFromDeg(-45), 2.5); err != nil {
		t.Fatal(err)
	}
	if gotNdir != nemodel.DistToDM {
		t.Fatal("DistToDM direction flag:", gotNdir)
	}
	if gotDist != 2.5 {
		t.Fatal("dist not passed through:", gotDist)
	}
	if st.solves != 2 {
		t.Fatal("solve calls:", st.solves)
	}
}

// The model reports kpc; the facade reports pc and the scattering
// timescale from the pulse-broadening-weighted SM at 1 GHz.
func TestDMToDistUnits(t *testing.T) {
	st := &stub{solve: func(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error) {
		return nemodel.SolveResult{Limit: ' ', Dist: 2.5, SMTau: 292}, nil
	}}
	m := pygedm.NewWithModel(st)
	dist, tau, err := m.DMToDist(unit.AngleFromDeg(10), unit.AngleFromDeg(10), 100)
	if err != nil {
		t.Fatal(err)
	}
	if dist != 2500 {
		t.Fatal("distance in pc:", dist)
	}
	// sm = 292 makes the (sm/292)^1.2 term exactly 1
	if tau.Sec() != 2.5 {
		t.Fatal("tau:", tau.Sec())
	}
}

// A sightline that leaves the model before accumulating the requested
// DM (or reaching the requested distance) must carry the lower-limit
// flag out through the facade.
func TestConversionLimit(t *testing.T) {
	st := &stub{solve: func(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error) {
		return nemodel.SolveResult{Limit: '>', DM: 50, Dist: 30, SMTau: 292}, nil
	}}
	m := pygedm.NewWithModel(st)

	cv, err := m.ConvertDM(unit.AngleFromDeg(10), unit.AngleFromDeg(80), 1e4)
	if err != nil {
		t.Fatal(err)
	}
	if !cv.Limit {
		t.Fatal("ConvertDM dropped the lower-limit flag")
	}
	if cv.DistPc != 3e4 {
		t.Fatal("limit distance:", cv.DistPc)
	}

	cv, err = m.ConvertDist(unit.AngleFromDeg(10), unit.AngleFromDeg(80), 50)
	if err != nil {
		t.Fatal(err)
	}
	if !cv.Limit {
		t.Fatal("ConvertDist dropped the lower-limit flag")
	}
	if cv.DM != 50 {
		t.Fatal("limit DM:", cv.DM)
	}

	st.solve = nil // stub default reports Limit ' '
	if cv, err = m.ConvertDM(unit.AngleFromDeg(10), unit.AngleFromDeg(0), 20); err != nil {
		t.Fatal(err)
	}
	if cv.Limit {
		t.Fatal("limit flag set on an in-model result")
	}
}

func TestElectronDensitySum(t *testing.T) {
	var v [nemodel.NComponents]float64
	for i := range v {
		v[i] = 99 // diagnostics, must all be ignored
	}
	for i := 0; i < 7; i++ {
		v[i] = float64(i + 1)
	}
	var gotP coord.Cart
	st := &stub{density: func(p coord.Cart) (nemodel.DensityResult, error) {
		gotP = p
		return nemodel.FromVector(v), nil
	}}
	m := pygedm.NewWithModel(st)
	ne, err := m.ElectronDensityXYZ(1, 8.5, -0.5)
	if err != nil {
		t.Fatal(err)
	}
	if ne != 28 {
		t.Fatal("ne:", ne)
	}
	if gotP != (coord.Cart{X: 1, Y: 8.5, Z: -0.5}) {
		t.Fatal("position:", gotP)
	}
}

func TestErrorPropagation(t *testing.T) {
	boom := errors.New("boom")
	st := &stub{
		solve: func(l, b float64, ndir int, dm, dist float32) (nemodel.SolveResult, error) {
			return nemodel.SolveResult{}, boom
		},
		density: func(p coord.Cart) (nemodel.DensityResult, error) {
			return nemodel.DensityResult{}, boom
		},
	}
	m := pygedm.NewWithModel(st)
	if _, _, err := m.DMToDist(0, 0, 100); !errors.Is(err, boom) {
		t.Fatal("DMToDist error:", err)
	}
	if _, _, err := m.DistToDM(0, 0, 2); !errors.Is(err, boom) {
		t.Fatal("DistToDM error:", err)
	}
	if _, err := m.ElectronDensityXYZ(0, 0, 0); !errors.Is(err, boom) {
		t.Fatal("ElectronDensityXYZ error:", err)
	}
}

func TestNoModelEnv(t *testing.T) {
	t.Setenv(pygedm.NoModelEnv, "1")
	m, err := pygedm.New("/no/such/directory")
	if err != nil {
		t.Fatal(err)
	}
	dist, tau, err := m.DMToDist(unit.AngleFromDeg(30), unit.AngleFromDeg(3), 100)
	if err != nil {
		t.Fatal(err)
	}
	if dist != 0 || tau != 0 {
		t.Fatal("stand-in not all-zero:", dist, tau)
	}
}

// galactic north pole: RA 12h51.4m, Dec +27.13° (J2000) must land
// near b = 90°.
func TestEqToGal(t *testing.T) {
	_, b := pygedm.EqToGal(
		unit.AngleFromDeg(192.85948), unit.AngleFromDeg(27.12825))
	if d := 90 - b.Deg(); math.Abs(d) > .1 {
		t.Fatal("galactic pole latitude off by", d, "deg")
	}
}

func ExampleTauISS() {
	// sm = 292 reduces the scattering term to the distance itself
	fmt.Println(pygedm.TauISS(1, 292, 1))
	// Output:
	// 1
}

// Round-trip consistency is a property of the compiled model; the test
// runs only where an NE2001 installation is available.
func TestRoundTrip(t *testing.T) {
	dir, err := nedata.Root("")
	if err != nil {
		t.Skip(err)
	}
	if err := nedata.Check(dir); err != nil {
		t.Skip(err)
	}
	m := pygedm.NewWithModel(ne2001exec.New(dir))
	l, b := unit.AngleFromDeg(30.5), unit.AngleFromDeg(-3.2)

	dist, _, err := m.DMToDist(l, b, 100)
	if err != nil {
		t.Skip(err)
	}
	dm, _, err := m.DistToDM(l, b, dist/1e3)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(dm-100)/100 > .05 {
		t.Fatal("round trip DM:", dm)
	}
}
