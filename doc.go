/*
Package pygedm wraps the NE2001 galactic free-electron density model,
converting between dispersion measure, distance and scattering
quantities for pulsar and FRB sightlines.

Contents

	Overview
	The compiled model
	Data files
	Library use
	Commands
	Environment
	References

# Overview

The dispersion measure (DM) of a radio pulse is the integrated
free-electron column density along the line of sight, in pc cm^-3.
Given a model of the galactic free-electron distribution, a DM can be
converted to a distance and a distance to a DM, and the turbulence
integrals along the same path give the expected pulse-broadening
timescale.

All of the science lives in the NE2001 model of Cordes & Lazio: the
spiral arms, the thick and thin disks, the galactic-center component,
the local ISM, the clumps and the voids, and the integrator that walks
a line of sight through them.  This repository reimplements none of
it.  It is a wrapper: unit and coordinate conversion on the way in,
invocation of the compiled model, a closed-form scattering-time
relation on the way out.

# The compiled model

The wrapper reaches the model through the two console programs the
NE2001 distribution builds, NE2001 (the line-of-sight solver) and
density (the point evaluator).  Package nemodel defines the calling
contract, package ne2001exec the subprocess driver.  Any other build
of the model, an in-process binding included, can be substituted
through the same interface; a binding that resolves its data files
against the process working directory should be installed with
NewInDir, which confines the directory switch behind a lock and
guarantees restoration on every exit path.

# Data files

The compiled programs read their model-parameter files (gal01.inp,
ne_arms_log_mod.inp and friends, see package nedata) from their
working directory.  The driver therefore starts them in the data
directory.  The files are opaque to the wrapper; only their presence
is checked.

# Library use

	m, err := pygedm.New("/path/to/ne2001/data")
	...
	dist, tau, err := m.DMToDist(unit.AngleFromDeg(30.5), unit.AngleFromDeg(-3.2), 100)

Distances are returned in pc, dispersion measures in pc cm^-3,
electron densities in cm^-3, scattering timescales in seconds at
1 GHz.  Zero DM or zero distance returns a zero result without
touching the model; the compiled routine hangs on zero input.

# Commands

The gedm command exposes the conversions:

	gedm dm2dist 30.5 -3.2 100
	gedm dist2dm 30.5 -3.2 2.5
	gedm density 1.0 8.0 0.1
	gedm map --dist 30 -o dm.png
	gedm profile --max 20 -o profile.png 30.5 -3.2

The necheck command verifies a data directory and reports DM↔distance
round-trip consistency over random sightlines.

# Environment

	NE2001_DATA     default data directory
	PYGEDM_NOMODEL  substitute the all-zero stand-in for the compiled
	                model.  Documentation builds only; never science.

# References

Cordes, J. M., & Lazio, T. J. W. (2002), NE2001. I. A New Model for
the Galactic Distribution of Free Electrons and its Fluctuations,
astro-ph/0207156.

Cordes, J. M., & Lazio, T. J. W. (2003), NE2001. II. Using Radio
Propagation Data to Construct a Model for the Galactic Distribution
of Free Electrons, astro-ph/0301598.
*/
package pygedm
