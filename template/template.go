// Package template expands the solver's XML definition templates. Templates
// use the solver's own {{KEY}} token syntax, so expansion is plain string
// replacement rather than a Go template engine.
package template

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sphaux/casegen/io"
)

// Names lists the definition documents every case ships with.
var Names = []string{
	"Fluids.xml", "Main.xml", "Settings.xml", "SPH.xml", "Time.xml",
}

// Substitute replaces every {{KEY}} occurrence in text with the mapped
// value. Keys absent from the text are a no-op, and the operation is
// idempotent as long as the values do not themselves contain tokens.
func Substitute(text string, data map[string]string) string {
	for k, v := range data {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}

// Data builds the substitution map for a case: the configured constants,
// the derived quantities, and the final record count n.
func Data(con *io.CaseConfig, d *io.Derived, n int) map[string]string {
	f := func(x float64) string {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	pair := func(v [2]float64) string {
		return f(v[0]) + ", " + f(v[1])
	}
	return map[string]string{
		"DR":         f(d.DR),
		"HFAC":       f(con.Hfac),
		"CS":         f(con.Cs),
		"COURANT":    f(con.Courant),
		"DOMAIN_MIN": pair(d.DomainMin),
		"DOMAIN_MAX": pair(d.DomainMax),
		"GAMMA":      f(con.Gamma),
		"REFD":       f(con.Refd),
		"VISC_DYN":   f(d.ViscDyn),
		"DELTA":      f(con.Delta),
		"G":          f(con.G),
		"N":          strconv.Itoa(n),
		"L":          f(con.L),
	}
}

// Expand reads each named template from templatesDir, substitutes data into
// it, and writes the result under the same name in outDir. A missing or
// unreadable template is an error; there is no partial-write recovery.
func Expand(templatesDir, outDir string, names []string,
	data map[string]string) error {

	for _, name := range names {
		buf, err := os.ReadFile(filepath.Join(templatesDir, name))
		if err != nil {
			return err
		}
		out := Substitute(string(buf), data)
		err = os.WriteFile(filepath.Join(outDir, name), []byte(out), 0666)
		if err != nil {
			return err
		}
	}
	return nil
}
