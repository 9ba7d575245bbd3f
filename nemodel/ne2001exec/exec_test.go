// Public domain.

package ne2001exec_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/shreetamapradhan/pygedm/nemodel"
	"github.com/shreetamapradhan/pygedm/nemodel/ne2001exec"
)

// fake writes a stand-in executable into dir.
func fake(t *testing.T, dir, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("posix shell required")
	}
	err := os.WriteFile(filepath.Join(dir, name),
		[]byte("#!/bin/sh\n"+script), 0o755)
	if err != nil {
		t.Fatal(err)
	}
}

func TestDriverSolve(t *testing.T) {
	dir := t.TempDir()
	// the child must run in the data directory and see degrees
	fake(t, dir, "NE2001", `pwd >args.txt
echo "$@" >>args.txt
cat <<EOF
   2.5170     DIST (kpc)
 100.0000     DM (pc-cm^{-3})
 1.2340e-03   SM (kpc-m^{-20/3})
 2.3450e-03   SMtau (kpc-m^{-20/3})
 3.4560e-03   SMtheta (kpc-m^{-20/3})
 4.5670e-03   SMiso (kpc-m^{-20/3})
EOF
`)
	d := ne2001exec.New(dir)
	r, err := d.Solve(0, 1.5707963267948966, nemodel.DMToDist, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.Dist != 2.517 || r.SMTau != 2.345e-3 {
		t.Fatal("result:", r)
	}

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(args)), "\n")
	if len(lines) != 2 {
		t.Fatal("args.txt:", string(args))
	}
	wd, _ := filepath.EvalSymlinks(strings.TrimSpace(lines[0]))
	want, _ := filepath.EvalSymlinks(dir)
	if wd != want {
		t.Fatal("child ran in", wd, "want", want)
	}
	// b = pi/2 rad on the interface, 90 degrees on the command line
	if f := strings.Fields(lines[1]); len(f) != 4 ||
		f[0] != "0.000000" || f[1] != "90.000000" ||
		f[2] != "100.0000" || f[3] != "1" {
		t.Fatal("child args:", lines[1])
	}
}

func TestDriverStderr(t *testing.T) {
	dir := t.TempDir()
	fake(t, dir, "NE2001", `echo "STOP: data file missing" >&2
exit 1
`)
	d := ne2001exec.New(dir)
	_, err := d.Solve(0, 0, nemodel.DMToDist, 100, 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "data file missing") {
		t.Fatal("stderr not surfaced:", err)
	}
}
