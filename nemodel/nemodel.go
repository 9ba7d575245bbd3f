// Public domain.

// Package nemodel defines the calling contract for the NE2001 galactic
// free-electron model, which this repository treats as an opaque,
// externally-built numerical capability.
//
// The two capabilities mirror the compiled routines dmdsm and
// density_2001 of Cordes & Lazio (2002, 2003).  Angles are in radians,
// the convention of the compiled code; the dispersion measure and
// distance arguments are the 32-bit in/out slots of the original call.
package nemodel

import (
	"github.com/soniakeys/coord"
)

// Direction flags for Model.Solve.
const (
	DMToDist = 1  // dm given, solve for distance
	DistToDM = -1 // distance given, solve for dm
)

// Model is the opaque NE2001 capability.
//
// Implementations are not required to be safe for concurrent use.  An
// implementation that resolves its data files against the process
// working directory must be wrapped with InDir.
type Model interface {
	// Solve integrates the electron-density model along the line of
	// sight l, b (radians).  With ndir = DMToDist, dm is the known
	// quantity and the solved distance is returned in SolveResult.Dist
	// (kpc); with ndir = DistToDM the roles are reversed and the solved
	// dispersion measure is returned in SolveResult.DM (pc cm^-3).
	Solve(l, b float64, ndir int, dm, dist float32) (SolveResult, error)

	// Density evaluates the model at a galactocentric cartesian
	// position in kpc and returns the full component breakdown.
	Density(p coord.Cart) (DensityResult, error)
}

// SolveResult holds the outputs of a line-of-sight integration.
type SolveResult struct {
	// Limit is '>' when the model boundary was reached before the
	// given DM, making Dist a lower limit.  Otherwise it is a space.
	Limit byte

	DM   float32 // dispersion measure, pc cm^-3
	Dist float32 // distance, kpc

	// Scattering measures, kpc m^-20/3.
	SM      float64 // uniform weighting
	SMTau   float64 // weighting for pulse broadening
	SMTheta float64 // weighting for angular broadening
	SMIso   float64 // for the isoplanatic angle at the source
}

// DensityResult holds the components returned by density_2001, in the
// order the compiled routine returns them.  The first seven are
// electron-density contributions in cm^-3; the rest are blending
// fractions and categorical membership flags, kept for diagnostics.
type DensityResult struct {
	Ne1    float64 // thick disk
	Ne2    float64 // thin disk
	Nea    float64 // spiral arms
	Negc   float64 // galactic center
	Nelism float64 // local ISM
	Necn   float64 // clumps
	Nevn   float64 // voids

	// Blending fractions corresponding to the densities above.
	F1, F2, Fa, Fgc, Flism, Fcn, Fvn float64

	WhichArm int // spiral arm hit, 0 for none
	Wlism    int // local ISM weight flag
	Wldr     int // local density region
	Wlhb     int // local hot bubble
	Wlsb     int // local super bubble
	WloopI   int // loop I
	HitClump int // clump index hit, 0 for none
	HitVoid  int // void index hit, 0 for none
	Wvoid    int // void weight flag
}

// Ne sums the seven density contributions, giving the total electron
// density in cm^-3.  The fractions and flags do not participate.
func (d *DensityResult) Ne() float64 {
	return d.Ne1 + d.Ne2 + d.Nea + d.Negc + d.Nelism + d.Necn + d.Nevn
}

// NComponents is the number of values returned by density_2001.
const NComponents = 23

// FromVector fills a DensityResult from the flat component vector in
// declared order.  The flag components are truncated to integers.
func FromVector(v [NComponents]float64) DensityResult {
	return DensityResult{
		Ne1: v[0], Ne2: v[1], Nea: v[2], Negc: v[3],
		Nelism: v[4], Necn: v[5], Nevn: v[6],
		F1: v[7], F2: v[8], Fa: v[9], Fgc: v[10],
		Flism: v[11], Fcn: v[12], Fvn: v[13],
		WhichArm: int(v[14]), Wlism: int(v[15]), Wldr: int(v[16]),
		Wlhb: int(v[17]), Wlsb: int(v[18]), WloopI: int(v[19]),
		HitClump: int(v[20]), HitVoid: int(v[21]), Wvoid: int(v[22]),
	}
}
