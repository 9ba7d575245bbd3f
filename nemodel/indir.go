// Public domain.

package nemodel

import (
	"github.com/soniakeys/coord"

	"github.com/shreetamapradhan/pygedm/workdir"
)

// InDir wraps a model so that every call runs with the process working
// directory set to dir, restored before the call returns.  It is for
// in-process NE2001 builds that resolve their data files relative to
// the working directory.  Calls through the wrapper are serialized by
// the workdir package mutex.
//
// The subprocess driver in package ne2001exec does not need this: it
// hands the data root to the child process directly.
func InDir(m Model, dir string) Model {
	return &dirModel{m: m, dir: dir}
}

type dirModel struct {
	m   Model
	dir string
}

func (d *dirModel) Solve(l, b float64, ndir int, dm, dist float32) (r SolveResult, err error) {
	err = workdir.In(d.dir, func() error {
		var err error
		r, err = d.m.Solve(l, b, ndir, dm, dist)
		return err
	})
	return
}

func (d *dirModel) Density(p coord.Cart) (r DensityResult, err error) {
	err = workdir.In(d.dir, func() error {
		var err error
		r, err = d.m.Density(p)
		return err
	})
	return
}
