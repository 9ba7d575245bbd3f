// Public domain.

// Package nedata locates the NE2001 model-parameter files.
//
// The files themselves are opaque to this repository; the compiled
// NE2001 programs read them directly.  All this package guarantees is
// that a resolved data root actually holds them.
package nedata

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
)

// Env names the environment variable overriding the data root.
const Env = "NE2001_DATA"

const parentImport = "github.com/shreetamapradhan/pygedm"

// Files are the model-parameter files the NE2001 programs read from
// their working directory.
var Files = []string{
	"gal01.inp",
	"ne_arms_log_mod.inp",
	"ne_gc.inp",
	"nelism.inp",
	"neclumpN.NE2001.dat",
	"nevoidN.NE2001.dat",
}

// Root resolves the data root.  Resolution order: the explicit
// override (normally a command line flag), the NE2001_DATA environment
// variable, the package source directory, the working directory.
func Root(override string) (string, error) {
	if override > "" {
		return override, nil
	}
	if dir := os.Getenv(Env); dir > "" {
		return dir, nil
	}
	if pp, err := build.Import(parentImport, "", build.FindOnly); err == nil {
		return filepath.Join(pp.Dir, "data"), nil
	}
	return os.Getwd()
}

// Check verifies that dir holds the model-parameter files, naming the
// first one missing.
func Check(dir string) error {
	for _, fn := range Files {
		if _, err := os.Stat(filepath.Join(dir, fn)); err != nil {
			return fmt.Errorf("NE2001 data file %s not found in %s", fn, dir)
		}
	}
	return nil
}
