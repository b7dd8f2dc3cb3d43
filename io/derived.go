package io

import (
	"math"
)

// Derived holds the discretization quantities computed once from a valid
// CaseConfig. Everything downstream (sampling passes, template expansion)
// works from this struct rather than recomputing.
type Derived struct {
	// H is the channel height, 0.5*L. Particles span y in [-0.5*H, 0.5*H].
	H float64
	// DR is the particle spacing, H/Ny.
	DR float64
	// Hsml is the smoothing length, Hfac*DR.
	Hsml float64

	// Domain bounding box handed to the solver. The buffer zone extends
	// Sep*Hsml beyond the channel on each relevant side.
	DomainMin, DomainMax [2]float64

	// Buffer pool size: NBufferX*NBufferY inert particles parked outside
	// the domain until the solver activates them at the inlet.
	NBufferX, NBufferY, NBuffer int

	// ViscDyn is the effective dynamic viscosity,
	// max(Alpha/8 * Refd * Hfac * DR * Cs, CaseConfig.ViscDyn).
	ViscDyn float64

	// Prb is the reference pressure scale of the equation of state,
	// Cs^2 * Refd / Gamma.
	Prb float64
}

// Derive computes the discretization quantities. con must pass Check; in
// particular Ny = 0 would divide by zero here.
func (con *CaseConfig) Derive() *Derived {
	d := &Derived{}
	d.H = 0.5 * con.L
	d.DR = d.H / float64(con.Ny)
	d.Hsml = con.Hfac * d.DR

	sh := con.Sep * d.Hsml
	d.DomainMin = [2]float64{-2.0 * sh, -(0.5*d.H + sh)}
	d.DomainMax = [2]float64{con.L + 3.0*sh, 0.5*d.H + 2.0*sh}

	d.NBufferX = int(2.0*con.Sep*con.Hfac) + 1
	d.NBufferY = con.Ny
	d.NBuffer = d.NBufferX * d.NBufferY

	d.ViscDyn = math.Max(con.Alpha/8.0*con.Refd*con.Hfac*d.DR*con.Cs,
		con.ViscDyn)
	d.Prb = con.Cs * con.Cs * con.Refd / con.Gamma

	return d
}
