// Public domain.

// Package gedmcfg reads the gedm configuration file and builds ready
// models for the commands.
//
// The configuration file is plain text, one keyword per line:
//
//	# comment
//	datadir = /usr/local/share/ne2001
//	ne2001 = NE2001
//	density = density
//	nu = 1.0
//
// Every keyword has a sensible default; an absent file is not an
// error.  By default the file is gedm.config in the resolved data
// root.
package gedmcfg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/shreetamapradhan/pygedm"
	"github.com/shreetamapradhan/pygedm/nedata"
	"github.com/shreetamapradhan/pygedm/nemodel"
	"github.com/shreetamapradhan/pygedm/nemodel/ne2001exec"
)

// Fn is the default configuration file name, looked up in the data
// root.
const Fn = "gedm.config"

type Config struct {
	DataDir    string  // NE2001 data directory
	NE2001Bin  string  // NE2001 executable override
	DensityBin string  // density executable override
	Nu         float64 // scattering reference frequency, GHz
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Nu: pygedm.ReferenceNu}
}

var rxKeyVal = regexp.MustCompile(`^[ \t]*([a-z0-9]+)[ \t]*=[ \t]*(.+?)[ \t]*$`)

// Load reads a configuration file over the defaults.  An empty fn
// means the default location, where a missing file just yields the
// defaults; an explicitly named file must exist.
func Load(fn string) (*Config, error) {
	c := Default()
	defaulted := fn == ""
	if defaulted {
		root, err := nedata.Root("")
		if err != nil {
			return c, nil
		}
		fn = filepath.Join(root, Fn)
	}
	f, err := os.Open(fn)
	if err != nil {
		if defaulted && os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()
	if err := c.read(f); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return c, nil
}

func (c *Config) read(r io.Reader) error {
	for sc := bufio.NewScanner(r); sc.Scan(); {
		l := sc.Text()
		if len(l) == 0 || l[0] == '#' {
			continue
		}
		ss := rxKeyVal.FindStringSubmatch(l)
		if ss == nil {
			return fmt.Errorf("unrecognized config line: %s", l)
		}
		switch ss[1] {
		case "datadir":
			c.DataDir = ss[2]
		case "ne2001":
			c.NE2001Bin = ss[2]
		case "density":
			c.DensityBin = ss[2]
		case "nu":
			nu, err := strconv.ParseFloat(ss[2], 64)
			if err != nil {
				return fmt.Errorf("bad nu: %w", err)
			}
			c.Nu = nu
		default:
			return fmt.Errorf("unrecognized config keyword: %s", ss[1])
		}
	}
	return nil
}

// Open builds a model from the configuration.  A non-empty dataFlag
// (normally the --data command line flag) overrides the configured
// data directory.  The PYGEDM_NOMODEL stand-in override applies here
// as it does in pygedm.New.
func (c *Config) Open(dataFlag string) (*pygedm.Model, error) {
	if os.Getenv(pygedm.NoModelEnv) > "" {
		return pygedm.NewWithModel(nemodel.Null{}), nil
	}
	if dataFlag > "" {
		c.DataDir = dataFlag
	}
	dir, err := nedata.Root(c.DataDir)
	if err != nil {
		return nil, err
	}
	if err := nedata.Check(dir); err != nil {
		return nil, err
	}
	d := ne2001exec.New(dir)
	if c.NE2001Bin > "" {
		d.NE2001 = c.NE2001Bin
	}
	if c.DensityBin > "" {
		d.DensityBin = c.DensityBin
	}
	return pygedm.NewWithModel(d), nil
}
