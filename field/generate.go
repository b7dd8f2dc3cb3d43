package field

import (
	"log"
	"math"

	"github.com/sphaux/casegen/io"
)

// Generator enumerates the particle records of a channel-flow case: the
// fluid lattice, the wall boundary elements, and the inert buffer pool.
type Generator struct {
	con *io.CaseConfig
	d   *io.Derived
}

func NewGenerator(con *io.CaseConfig) *Generator {
	return &Generator{con, con.Derive()}
}

// Derived exposes the discretization quantities the generator works from.
func (g *Generator) Derived() *io.Derived { return g.d }

// steps returns the number of samples i >= 0 with start + i*step < limit.
// This is the count the float while-loop `for x := start; x < limit; x +=
// step` is meant to produce, but computed up front so accumulated rounding
// cannot change it mid-pass.
func steps(start, limit, step float64) int {
	if step <= 0 || limit <= start {
		return 0
	}
	n := int((limit - start) / step)
	for start+float64(n)*step < limit {
		n++
	}
	for n > 0 && start+float64(n-1)*step >= limit {
		n--
	}
	return n
}

// FluidSteps returns the lattice dimensions of the fluid pass. The lattice
// is seeded at half the final spacing; the solver's particle-shifting
// initialization relaxes it to DR.
func (g *Generator) FluidSteps() (nx, ny int) {
	con, d := g.con, g.d
	sh := con.Sep * d.Hsml
	nx = steps(0.5*d.DR-sh, con.L+sh, 0.5*d.DR)
	ny = steps(-0.5*d.H+0.5*d.DR, 0.5*d.H, 0.5*d.DR)
	return nx, ny
}

// WallSteps returns the number of x stations of the boundary pass. Each
// station gets one element per wall.
func (g *Generator) WallSteps() int {
	con, d := g.con, g.d
	sh := con.Sep * d.Hsml
	return steps(0.5*d.DR-sh, con.L-0.5*d.DR+sh, 0.5*d.DR)
}

// Count returns the total number of records a full run will emit.
func (g *Generator) Count() int {
	nx, ny := g.FluidSteps()
	return nx*ny + 2*g.WallSteps() + g.d.NBuffer
}

type progress struct{ last int }

func (p *progress) update(i, total int) {
	pct := int(math.Round(float64(i+1) / float64(total) * 100))
	if pct == p.last {
		return
	}
	p.last = pct
	if pct%10 == 0 {
		log.Printf("    %d%%", pct)
	}
}

// WriteFluid emits the staggered fluid lattice: kind 1, inflow velocity,
// hydrostatic density, area mass refd*dr^2.
func (g *Generator) WriteFluid(w *Writer) (int, error) {
	con, d := g.con, g.d
	sh := con.Sep * d.Hsml
	x0 := 0.5*d.DR - sh
	y0 := -0.5*d.H + 0.5*d.DR
	nx, ny := g.FluidSteps()
	mass := con.Refd * d.DR * d.DR

	prog, n := &progress{last: -1}, 0
	for i := 0; i < nx; i++ {
		prog.update(i, nx)
		x := x0 + float64(i)*0.5*d.DR
		for j := 0; j < ny; j++ {
			y := y0 + float64(j)*0.5*d.DR
			press := con.Refd * con.G * (d.H - y)
			p := &Particle{
				X: x, Y: y,
				Vx: con.U,
				Dens: Density(press, d.Prb, con.Gamma, con.Refd),
				Mass: mass,
				Kind: Fluid,
			}
			if err := w.Particle(p); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// WriteWalls emits two boundary elements per x station, one on each wall,
// with outward normals (0, -1) and (0, +1) and line mass dr.
func (g *Generator) WriteWalls(w *Writer) (int, error) {
	con, d := g.con, g.d
	sh := con.Sep * d.Hsml
	x0 := 0.5*d.DR - sh
	nx := g.WallSteps()

	prog, n := &progress{last: -1}, 0
	for i := 0; i < nx; i++ {
		prog.update(i, nx)
		x := x0 + float64(i)*0.5*d.DR
		for _, side := range []float64{-1.0, 1.0} {
			y := side * 0.5 * d.H
			press := con.Refd * con.G * (d.H - y)
			p := &Particle{
				X: x, Y: y,
				Ny: side,
				Vx: con.U,
				Dens: Density(press, d.Prb, con.Gamma, con.Refd),
				Mass: d.DR,
				Kind: Boundary,
			}
			if err := w.Particle(p); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, nil
}

// WriteBuffer emits the inert buffer pool. All records share one parking
// point just outside the domain; the solver repositions them when it
// activates buffer particles at the inlet.
func (g *Generator) WriteBuffer(w *Writer) (int, error) {
	con, d := g.con, g.d
	sh := con.Sep * d.Hsml
	x := d.DomainMax[0] + sh
	y := d.DomainMax[1] + sh
	mass := con.Refd * d.DR * d.DR

	prog := &progress{last: -1}
	for i := 0; i < d.NBuffer; i++ {
		prog.update(i, d.NBuffer)
		p := &Particle{
			X: x, Y: y,
			Dens: con.Refd,
			Mass: mass,
			Kind: Buffer,
		}
		if err := w.Particle(p); err != nil {
			return i, err
		}
	}
	return d.NBuffer, nil
}

// Generate runs the three passes in order and returns the total record
// count. The count is also what the N template key expands to.
func (g *Generator) Generate(w *Writer) (int, error) {
	if err := w.Banner(); err != nil {
		return 0, err
	}

	log.Println("Writing fluid particles...")
	if _, err := g.WriteFluid(w); err != nil {
		return w.N(), err
	}
	log.Println("Writing the boundary elements...")
	if _, err := g.WriteWalls(w); err != nil {
		return w.N(), err
	}
	log.Println("Writing buffer particles...")
	if _, err := g.WriteBuffer(w); err != nil {
		return w.N(), err
	}

	if err := w.Flush(); err != nil {
		return w.N(), err
	}
	return w.N(), nil
}
