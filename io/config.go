package io

import (
	"fmt"
)

const (
	ExampleCaseFile = `[Case]

#######################
# Required Parameters #
#######################

# Directory that the particle file and the expanded XML definitions will be
# written to.
Output = path/to/case/dir

# Directory containing the XML templates (Fluids.xml, Main.xml, Settings.xml,
# SPH.xml and Time.xml) with their {{KEY}} tokens still in place.
Templates = path/to/templates

#######################
# Optional Parameters #
#######################

# All physical and discretization parameters default to the reference 2D
# channel-flow setup and only need to be set when deviating from it.

# Gravity. The channel case is usually run without it.
# G = 0.0

# Speed of sound of the weakly-compressible formulation.
# Cs = 50.0

# Courant factor handed to the solver.
# Courant = 0.2

# Polytropic exponent of the equation of state.
# Gamma = 1.0

# Reference density.
# Refd = 1.0

# Artificial viscosity factor. The effective dynamic viscosity written to the
# definitions is max(Alpha/8 * Refd * Hfac * dr * Cs, ViscDyn), so ViscDyn
# acts as a floor.
# Alpha = 0.0
# ViscDyn = 0.001

# Diffusive (delta-SPH) term.
# Delta = 1.0

# Inflow velocity.
# U = 1.0

# Channel length. The channel height is 0.5*L.
# L = 1.0

# Number of fluid particles across the channel height.
# Ny = 100

# Smoothing length in units of the particle spacing, and the buffer-zone
# width in units of the smoothing length.
# Hfac = 4.0
# Sep = 2.0

# Diagnostic output is redirected here when set. Default is stderr.
# LogFile = log.out`

	ExamplePlotFile = `[Plot]

#######################
# Required Parameters #
#######################

# Sensor time series written by the solver while it runs.
Sensors = path/to/sensors.out

# Experimental reference series sampled at the same probe positions.
Reference = path/to/exp_data.dat

# Directory that the figures (and the optional CSV export) are written to.
Output = path/to/output/dir

#######################
# Optional Parameters #
#######################

# Pressure columns to compare, counted from 0 with time in column 0. The
# defaults match the reference probe layout.
# Column = 1
# Column = 3
# Column = 5
# Column = 7

# Axis limits of the figures.
# TMax = 6.0
# PMin = -1000.0
# PMax = 15000.0

# Also write the aligned series and pointwise errors as CSV files.
# ExportCSV = true

# LogFile = log.out`
)

// CaseConfig holds the physical and discretization parameters of a 2D
// channel-flow case. The zero value is not usable; start from
// DefaultCaseWrapper so that unset parameters fall back to the reference
// setup.
type CaseConfig struct {
	// Required
	Output, Templates string

	// Physical constants
	G, Cs, Courant, Gamma, Refd float64
	Alpha, Delta, ViscDyn, U    float64

	// Geometry and discretization
	L         float64
	Ny        int
	Hfac, Sep float64

	// Optional
	LogFile string
}

type CaseWrapper struct {
	Case CaseConfig
}

func DefaultCaseWrapper() *CaseWrapper {
	con := CaseConfig{
		G:       0.0,
		Cs:      50.0,
		Courant: 0.2,
		Gamma:   1.0,
		Refd:    1.0,
		Alpha:   0.0,
		Delta:   1.0,
		ViscDyn: 0.001,
		U:       1.0,
		L:       1.0,
		Ny:      100,
		Hfac:    4.0,
		Sep:     2.0,
	}
	return &CaseWrapper{con}
}

func (con *CaseConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *CaseConfig) ValidTemplates() bool {
	return con.Templates != ""
}
func (con *CaseConfig) ValidNy() bool {
	return con.Ny > 0
}
func (con *CaseConfig) ValidL() bool {
	return con.L > 0
}
func (con *CaseConfig) ValidHfac() bool {
	return con.Hfac > 0
}
func (con *CaseConfig) ValidSep() bool {
	return con.Sep > 0
}
func (con *CaseConfig) ValidCs() bool {
	return con.Cs > 0
}
func (con *CaseConfig) ValidGamma() bool {
	return con.Gamma > 0
}
func (con *CaseConfig) ValidRefd() bool {
	return con.Refd > 0
}
func (con *CaseConfig) ValidAlpha() bool {
	return con.Alpha >= 0
}
func (con *CaseConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// Check runs every validity method and returns a descriptive error for the
// first parameter that fails. main calls this after gcfg has filled the
// struct in.
func (con *CaseConfig) Check() error {
	switch {
	case !con.ValidOutput():
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	case !con.ValidTemplates():
		return fmt.Errorf("Invalid/non-existent 'Templates' value.")
	case !con.ValidNy():
		return fmt.Errorf("'Ny' must be positive, but is %d.", con.Ny)
	case !con.ValidL():
		return fmt.Errorf("'L' must be positive, but is %g.", con.L)
	case !con.ValidHfac():
		return fmt.Errorf("'Hfac' must be positive, but is %g.", con.Hfac)
	case !con.ValidSep():
		return fmt.Errorf("'Sep' must be positive, but is %g.", con.Sep)
	case !con.ValidCs():
		return fmt.Errorf("'Cs' must be positive, but is %g.", con.Cs)
	case !con.ValidGamma():
		return fmt.Errorf("'Gamma' must be positive, but is %g.", con.Gamma)
	case !con.ValidRefd():
		return fmt.Errorf("'Refd' must be positive, but is %g.", con.Refd)
	case !con.ValidAlpha():
		return fmt.Errorf("'Alpha' must be non-negative, but is %g.", con.Alpha)
	}
	return nil
}

// PlotConfig describes a sensor-pressure comparison run.
type PlotConfig struct {
	// Required
	Sensors, Reference, Output string

	// Optional
	Column           []int
	TMax, PMin, PMax float64
	ExportCSV        bool
	LogFile          string
}

type PlotWrapper struct {
	Plot PlotConfig
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{
		TMax: 6.0,
		PMin: -1000.0,
		PMax: 15000.0,
	}
	return &PlotWrapper{con}
}

// SensorColumns returns the pressure column indexes to compare. When the
// config file does not name any, the reference probe layout is used.
func (con *PlotConfig) SensorColumns() []int {
	if len(con.Column) == 0 {
		return []int{1, 3, 5, 7}
	}
	return con.Column
}

func (con *PlotConfig) ValidSensors() bool {
	return con.Sensors != ""
}
func (con *PlotConfig) ValidReference() bool {
	return con.Reference != ""
}
func (con *PlotConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *PlotConfig) ValidTMax() bool {
	return con.TMax > 0
}
func (con *PlotConfig) ValidColumns() bool {
	for _, c := range con.Column {
		if c < 1 {
			return false
		}
	}
	return true
}
func (con *PlotConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

func (con *PlotConfig) Check() error {
	switch {
	case !con.ValidSensors():
		return fmt.Errorf("Invalid/non-existent 'Sensors' value.")
	case !con.ValidReference():
		return fmt.Errorf("Invalid/non-existent 'Reference' value.")
	case !con.ValidOutput():
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	case !con.ValidTMax():
		return fmt.Errorf("'TMax' must be positive, but is %g.", con.TMax)
	case !con.ValidColumns():
		return fmt.Errorf("'Column' values must be positive.")
	}
	return nil
}
