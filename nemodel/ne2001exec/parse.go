// Public domain.

package ne2001exec

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shreetamapradhan/pygedm/nemodel"
)

// labeled value lines as printed by the NE2001 console programs.
// Unknown labels are ignored so that program revisions printing extra
// diagnostics keep parsing.
type fields map[string]float64

func parseFields(out []byte) (fields, bool) {
	f := make(fields)
	limit := false
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		w := strings.Fields(line)
		if strings.HasPrefix(w[0], ">") {
			// lower-limit marker, attached or free-standing
			limit = true
			if w[0] = w[0][1:]; w[0] == "" {
				w = w[1:]
			}
		}
		if len(w) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(w[0], 64)
		if err != nil {
			continue
		}
		f[w[1]] = v
	}
	return f, limit
}

func (f fields) get(label string) (float64, error) {
	v, ok := f[label]
	if !ok {
		return 0, fmt.Errorf("ne2001 output missing %s", label)
	}
	return v, nil
}

func parseSolve(out []byte) (r nemodel.SolveResult, err error) {
	f, limit := parseFields(out)
	r.Limit = ' '
	if limit {
		r.Limit = '>'
	}
	var v float64
	for _, c := range []struct {
		label string
		set   func(float64)
	}{
		{"DIST", func(v float64) { r.Dist = float32(v) }},
		{"DM", func(v float64) { r.DM = float32(v) }},
		{"SM", func(v float64) { r.SM = v }},
		{"SMtau", func(v float64) { r.SMTau = v }},
		{"SMtheta", func(v float64) { r.SMTheta = v }},
		{"SMiso", func(v float64) { r.SMIso = v }},
	} {
		if v, err = f.get(c.label); err != nil {
			return nemodel.SolveResult{}, err
		}
		c.set(v)
	}
	return r, nil
}

// density labels in the order of nemodel.FromVector.
var densityLabels = []string{
	"ne1", "ne2", "nea", "negc", "nelism", "necn", "nevn",
	"F1", "F2", "Fa", "Fgc", "Flism", "Fcn", "Fvn",
	"whicharm", "wlism", "wLDR", "wLHB", "wLSB", "wLOOPI",
	"hitclump", "hitvoid", "wvoid",
}

func parseDensity(out []byte) (nemodel.DensityResult, error) {
	f, _ := parseFields(out)
	var v [nemodel.NComponents]float64
	for i, label := range densityLabels {
		c, err := f.get(label)
		if err != nil {
			return nemodel.DensityResult{}, err
		}
		v[i] = c
	}
	return nemodel.FromVector(v), nil
}
