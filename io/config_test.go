package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCase() *CaseConfig {
	con := &DefaultCaseWrapper().Case
	con.Output = "out"
	con.Templates = "templates"
	return con
}

func TestDeriveReferenceCase(t *testing.T) {
	// L=1, ny=100, hfac=4, sep=2: the reference channel setup.
	con := validCase()
	d := con.Derive()

	assert.InDelta(t, 0.5, d.H, 1e-12, "H")
	assert.InDelta(t, 0.005, d.DR, 1e-12, "dr")
	assert.InDelta(t, 0.02, d.Hsml, 1e-12, "h")

	assert.InDelta(t, -0.08, d.DomainMin[0], 1e-12, "domain min x")
	assert.InDelta(t, -0.29, d.DomainMin[1], 1e-12, "domain min y")
	assert.InDelta(t, 1.12, d.DomainMax[0], 1e-12, "domain max x")
	assert.InDelta(t, 0.33, d.DomainMax[1], 1e-12, "domain max y")

	assert.Equal(t, 17, d.NBufferX, "buffer columns")
	assert.Equal(t, 100, d.NBufferY, "buffer rows")
	assert.Equal(t, 1700, d.NBuffer, "buffer count")

	assert.InDelta(t, 2500.0, d.Prb, 1e-9, "prb")
}

func TestDeriveViscosityFloor(t *testing.T) {
	for _, alpha := range []float64{0, 0.01, 0.1, 1, 10} {
		con := validCase()
		con.Alpha = alpha
		d := con.Derive()
		assert.True(t, d.ViscDyn >= con.ViscDyn,
			"effective viscosity undercuts floor for alpha=%g", alpha)
	}

	// Large alpha must dominate the floor.
	con := validCase()
	con.Alpha = 8.0
	d := con.Derive()
	assert.InDelta(t, con.Refd*con.Hfac*d.DR*con.Cs, d.ViscDyn, 1e-12)
}

func TestCaseCheck(t *testing.T) {
	assert.NoError(t, validCase().Check())

	con := validCase()
	con.Ny = 0
	assert.Error(t, con.Check(), "ny = 0 must be rejected")

	con = validCase()
	con.Output = ""
	assert.Error(t, con.Check(), "missing output dir must be rejected")

	con = validCase()
	con.Alpha = -0.1
	assert.Error(t, con.Check(), "negative alpha must be rejected")
}

func TestPlotConfigDefaults(t *testing.T) {
	con := &DefaultPlotWrapper().Plot
	assert.Equal(t, []int{1, 3, 5, 7}, con.SensorColumns(),
		"default probe columns")

	con.Column = []int{2, 4}
	assert.Equal(t, []int{2, 4}, con.SensorColumns())

	con.Sensors = "sensors.out"
	con.Reference = "exp.dat"
	con.Output = "out"
	assert.NoError(t, con.Check())

	con.Column = []int{0}
	assert.Error(t, con.Check(), "column 0 is the timebase")
}
