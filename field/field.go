package field

import (
	"bufio"
	"fmt"
	goio "io"
	"math"
)

// Kind is the particle move flag understood by the solver.
type Kind int

const (
	// Fluid particles carry the fluid state.
	Fluid Kind = 1
	// Boundary elements represent wall segments with an outward normal.
	Boundary Kind = -3
	// Buffer particles are inert placeholders the solver activates later.
	Buffer Kind = 0
)

// Particle is a single record of the particle file. The two reserved fields
// of the on-disk format are always zero and are not represented here.
type Particle struct {
	X, Y   float64
	Nx, Ny float64
	Vx, Vy float64
	Dens   float64
	Mass   float64
	Kind   Kind
}

// Density evaluates the polytropic equation of state,
// refd * (press/prb + 1)^(1/gamma). Zero pressure gives exactly refd.
func Density(press, prb, gamma, refd float64) float64 {
	return refd * math.Pow(press/prb+1.0, 1.0/gamma)
}

const banner = `#############################################################
#                                                           #
#    2D channel flow particle field                         #
#                                                           #
#    x y, nx ny, vx vy, 0 0, dens, 0, mass, imove           #
#                                                           #
#############################################################
`

// Writer emits particle records in the solver's fixed 12-field text format
// and keeps the running record count.
type Writer struct {
	w *bufio.Writer
	n int
}

func NewWriter(w goio.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Banner writes the comment block at the top of the particle file. The
// solver skips '#' lines.
func (w *Writer) Banner() error {
	_, err := w.w.WriteString(banner)
	return err
}

// Particle writes one record. Field order and grouping are fixed by the
// solver's loader: x y, nx ny, vx vy, 0 0, dens, 0, mass, imove.
func (w *Writer) Particle(p *Particle) error {
	_, err := fmt.Fprintf(w.w, "%g %g, %g %g, %g %g, 0.0 0.0, %g, 0.0, %g, %d\n",
		p.X, p.Y, p.Nx, p.Ny, p.Vx, p.Vy, p.Dens, p.Mass, p.Kind)
	if err != nil {
		return err
	}
	w.n++
	return nil
}

// N returns the number of records written so far.
func (w *Writer) N() int { return w.n }

// Flush drains the buffer to the underlying writer. Call once after the last
// pass; the caller still owns the underlying file handle.
func (w *Writer) Flush() error { return w.w.Flush() }
