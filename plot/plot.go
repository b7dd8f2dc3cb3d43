// Package plot renders the sensor pressure comparison through matplotlib.
package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/sphaux/casegen/io"
	"github.com/sphaux/casegen/sensor"
)

// Pressure writes one figure per compared sensor: the simulated signal in
// black, the resampled reference in red, axes fixed by the config so
// successive runs are directly comparable. Returns the figure file names.
func Pressure(con *io.PlotConfig, cs []*sensor.Comparison) ([]string, error) {
	plt.Reset()

	names := make([]string, len(cs))
	for i, c := range cs {
		fname := filepath.Join(
			con.Output, fmt.Sprintf("%s.png", strings.ToLower(c.Label)),
		)
		names[i] = fname

		plt.Figure()
		plt.Plot(c.T, c.Sim, "k", plt.LW(1))
		plt.Plot(c.T, c.Ref, "r", plt.LW(1))

		plt.Title(fmt.Sprintf("%s (rms = %.4g)", c.Label, c.RMS))
		plt.XLabel(`$t \, [\mathrm{s}]$`, plt.FontSize(16))
		plt.YLabel(`$p \, [\mathrm{Pa}]$`, plt.FontSize(16))
		plt.XLim(0, con.TMax)
		plt.YLim(con.PMin, con.PMax)
		plt.Grid(plt.Axis("x"))
		plt.Grid(plt.Axis("y"))
		plt.SaveFig(fname)
	}

	plt.Execute()
	return names, nil
}
