// Public domain.

package pygedm

import "math"

// TauISS converts a scattering measure to a pulse-broadening timescale.
//
// Args:
//
//	d   distance, kpc
//	sm  scattering measure, kpc m^-20/3
//	nu  radio frequency, GHz
//
// The relation is the one in scattering98.f of the NE2001 distribution,
//
//	tauiss = (sm/292)^1.2 * d * nu^-4.4
//
// There the result carries a factor 1000 and is labeled milliseconds;
// the wrapper convention drops the factor and consumes the bare value
// as seconds at 1 GHz.  That numeric behavior is preserved here
// exactly; do not "fix" the unit without also fixing every caller.
//
// TauISS is pure.  A negative sm raises no error: the fractional power
// of a negative base yields NaN, which propagates.
func TauISS(d, sm, nu float64) float64 {
	return math.Pow(sm/292, 1.2) * d * math.Pow(nu, -4.4)
}
