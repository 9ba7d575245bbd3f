// Public domain.

// Package skymap computes all-sky maps of sightline quantities on a
// plate carrée (equirectangular) grid in galactic coordinates, and
// renders them as images.
package skymap

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// An Eval evaluates a sightline quantity at galactic l, b.  It must be
// safe for concurrent calls; the subprocess-backed model is, an
// in-process model under the workdir guard merely serializes.
type Eval func(l, b unit.Angle) (float64, error)

// Grid holds evaluated values on a cols × cols/2 plate carrée grid.
// Pixel (0, 0) is l = -180°, b = +90°.
type Grid struct {
	Cols int
	vals []float64
}

// Rows returns the number of grid rows, Cols/2.
func (g *Grid) Rows() int { return g.Cols / 2 }

// At returns the value at grid position x, y.
func (g *Grid) At(x, y int) float64 { return g.vals[y*g.Cols+x] }

// Max returns the largest grid value.
func (g *Grid) Max() float64 { return floats.Max(g.vals) }

// Quantile returns the empirical p-quantile of the grid values.  Color
// scaling uses a high quantile rather than the maximum so a few
// extreme sightlines through the galactic center do not flatten the
// rest of the map.
func (g *Grid) Quantile(p float64) float64 {
	s := make([]float64, len(g.vals))
	copy(s, g.vals)
	sort.Float64s(s)
	return stat.Quantile(p, stat.Empirical, s, nil)
}

// Compute evaluates eval over a grid of the given number of columns.
// cols is forced even and rows are computed concurrently by the given
// number of workers (GOMAXPROCS if zero or less).  The first
// evaluation error aborts the computation.
func Compute(eval Eval, cols, workers int) (*Grid, error) {
	if cols < 2 {
		cols = 360
	}
	if cols%2 != 0 {
		cols++
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g := &Grid{Cols: cols, vals: make([]float64, cols*cols/2)}
	step := 360 / float64(cols)

	rowCh := make(chan int)
	var wg sync.WaitGroup
	var failed atomic.Bool
	var once sync.Once
	var firstErr error
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowCh {
				// keep draining after a failure so the feed
				// loop below cannot block
				if failed.Load() {
					continue
				}
				b := unit.AngleFromDeg(90 - float64(y)*step)
				for x := 0; x < cols; x++ {
					l := unit.AngleFromDeg(float64(x)*step - 180)
					v, err := eval(l, b)
					if err != nil {
						once.Do(func() { firstErr = err })
						failed.Store(true)
						break
					}
					g.vals[y*cols+x] = v
				}
			}
		}()
	}
	for y := 0; y < g.Rows(); y++ {
		rowCh <- y
	}
	close(rowCh)
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return g, nil
}
