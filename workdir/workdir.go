// Public domain.

// Package workdir provides scoped acquisition of the process working
// directory.  The working directory is a single process-wide register,
// so scoped use of it is confined behind a package mutex.
package workdir

import "os"

// locked serializes all users of the working-directory register.
// A channel rather than sync.Mutex so In stays free of lock/unlock
// pairing across the chdir failure paths.
var locked = make(chan struct{}, 1)

// In runs fn with the working directory set to dir.  The caller's
// working directory is restored before In returns on every path:
// fn success, fn error, or a chdir failure.  An error from fn takes
// precedence over an error restoring the directory.
func In(dir string, fn func() error) (err error) {
	locked <- struct{}{}
	defer func() { <-locked }()

	prev, err := os.Getwd()
	if err != nil {
		return err
	}
	if err = os.Chdir(dir); err != nil {
		return err
	}
	defer func() {
		if cerr := os.Chdir(prev); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn()
}
