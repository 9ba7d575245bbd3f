// Public domain.

package workdir_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shreetamapradhan/pygedm/workdir"
)

func TestIn(t *testing.T) {
	wd0, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	ran := false
	err = workdir.In(dir, func() error {
		ran = true
		got, err := os.Getwd()
		if err != nil {
			return err
		}
		// temp dirs may come back through symlinks
		want, _ := filepath.EvalSymlinks(dir)
		if got, _ = filepath.EvalSymlinks(got); got != want {
			t.Fatal("ran in", got, "want", want)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatal("fn not run")
	}
	if wd, _ := os.Getwd(); wd != wd0 {
		t.Fatal("not restored:", wd)
	}
}

// The caller's directory must be restored on the error path too, with
// the fn error continuing to propagate unchanged.
func TestInRestoresOnError(t *testing.T) {
	wd0, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	err = workdir.In(t.TempDir(), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatal("error not propagated:", err)
	}
	if wd, _ := os.Getwd(); wd != wd0 {
		t.Fatal("not restored:", wd)
	}
}

func TestInBadDir(t *testing.T) {
	wd0, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	err = workdir.In(filepath.Join(t.TempDir(), "missing"), func() error {
		t.Fatal("fn run with no directory switch")
		return nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if wd, _ := os.Getwd(); wd != wd0 {
		t.Fatal("not restored:", wd)
	}
}
