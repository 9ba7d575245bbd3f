// Public domain.

// Command necheck verifies an NE2001 installation.
//
// It checks that the data directory holds the model-parameter files,
// then runs a number of random sightlines through the DM-to-distance
// conversion and back, reporting the round-trip error of each.  The
// round trip is a property of the compiled model itself, so this is
// the quickest way to tell a healthy installation from a broken one.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/unit"

	"github.com/shreetamapradhan/pygedm"
	"github.com/shreetamapradhan/pygedm/nedata"
	"github.com/shreetamapradhan/pygedm/nemodel/ne2001exec"
)

const versionString = "necheck version 1.0 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: necheck [options]        verify an NE2001 installation
       necheck -v               display version and copyright

Options:
       -p <data-dir>
       -n <sightlines>
       -t <tolerance>
       -repeatable
`)
	}
	dp := flag.String("p", "", "")
	n := flag.Int("n", 10, "")
	tol := flag.Float64("t", .05, "")
	repeatable := flag.Bool("repeatable", false, "")
	vers := flag.Bool("v", false, "")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	dir, err := nedata.Root(*dp)
	if err != nil {
		exit.Log(err)
	}
	if err := nedata.Check(dir); err != nil {
		exit.Log(err)
	}
	m := pygedm.NewWithModel(ne2001exec.New(dir))

	rnd := xrand.New(&xrand.PCGSource{})
	if *repeatable {
		rnd.Seed(3)
	} else {
		rnd.Seed(uint64(time.Now().UnixNano()))
	}

	fmt.Printf("data: %s\n", dir)
	fmt.Printf("%9s %9s %9s %11s %9s %7s\n",
		"l", "b", "DM", "DIST(pc)", "DM back", "err")
	bad := 0
	for i := 0; i < *n; i++ {
		l := unit.AngleFromDeg(rnd.Float64()*360 - 180)
		b := unit.AngleFromDeg(rnd.Float64()*180 - 90)
		dm := rnd.Float64()*300 + 1 // keep clear of the degenerate zero

		dist, _, err := m.DMToDist(l, b, dm)
		if err != nil {
			exit.Log(err)
		}
		dmBack, _, err := m.DistToDM(l, b, dist/1e3)
		if err != nil {
			exit.Log(err)
		}

		relErr := math.Abs(dmBack-dm) / dm
		mark := ""
		if relErr > *tol {
			mark = " *"
			bad++
		}
		fmt.Printf("%9.4f %9.4f %9.3f %11.1f %9.3f %7.4f%s\n",
			l.Deg(), b.Deg(), dm, dist, dmBack, relErr, mark)
	}
	if bad > 0 {
		exit.Log(fmt.Sprintf(
			"%d of %d sightlines exceeded round-trip tolerance %g",
			bad, *n, *tol))
	}
	fmt.Println("ok")
}
