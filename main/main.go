package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/gcfg.v1"

	"github.com/sphaux/casegen/field"
	"github.com/sphaux/casegen/io"
	"github.com/sphaux/casegen/plot"
	"github.com/sphaux/casegen/sensor"
	"github.com/sphaux/casegen/template"
)

func main() {
	// main handles input sanitization and dispatches to the secondary main
	// function of the selected mode.

	var (
		generate, plotStr string
		exampleConfig     string
	)
	vars := map[string]*string{
		"Generate":      &generate,
		"Plot":          &plotStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&generate, "Generate", "",
		"Configuration file for [Case] mode: write the particle file and "+
			"the expanded XML definitions for a channel-flow case.",
	)
	flag.StringVar(
		&plotStr, "Plot", "",
		"Configuration file for [Plot] mode: compare solver sensor "+
			"pressures against the experimental reference.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Case' and 'Plot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Generate":
		wrap := io.DefaultCaseWrapper()
		if err := gcfg.ReadFileInto(wrap, generate); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Case
		if err := con.Check(); err != nil {
			log.Fatal(err.Error())
		}

		setupLog(con.LogFile)
		generateMain(con)

	case "Plot":
		wrap := io.DefaultPlotWrapper()
		if err := gcfg.ReadFileInto(wrap, plotStr); err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Plot
		if err := con.Check(); err != nil {
			log.Fatal(err.Error())
		}

		setupLog(con.LogFile)
		plotMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Case":
			fmt.Println(io.ExampleCaseFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatalf(
				"Unrecognized example config type '%s'.", exampleConfig,
			)
		}
	}
}

func getModeName(vars map[string]*string) (string, error) {
	n, modeStr := 0, ""
	for name, val := range vars {
		if *val != "" {
			n++
			modeStr = name
		}
	}

	if n != 1 {
		return "", fmt.Errorf(
			"Given %d mode flags, but exactly 1 is required.", n,
		)
	}
	return modeStr, nil
}

// setupLog redirects diagnostics to the given file. The handle stays open
// for the life of the process.
func setupLog(path string) {
	if path == "" {
		return
	}
	lf, err := os.Create(path)
	if err != nil {
		log.Fatalln(err.Error())
	}
	log.SetOutput(lf)
}

func generateMain(con *io.CaseConfig) {
	gen := field.NewGenerator(con)
	d := gen.Derived()

	if err := os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	fname := filepath.Join(con.Output, "Fluid.dat")
	log.Printf("Writing %d particles to %s", gen.Count(), fname)

	f, err := os.Create(fname)
	if err != nil {
		log.Fatal(err.Error())
	}

	w := field.NewWriter(f)
	n, err := gen.Generate(w)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("%d particles written", n)

	data := template.Data(con, d, n)
	err = template.Expand(con.Templates, con.Output, template.Names, data)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote XML definitions to %s", con.Output)
}

func plotMain(con *io.PlotConfig) {
	cols := con.SensorColumns()

	sim, err := sensor.ReadSeries(con.Sensors, cols)
	if err != nil {
		log.Fatal(err.Error())
	}
	ref, err := sensor.ReadSeries(con.Reference, cols)
	if err != nil {
		log.Fatal(err.Error())
	}

	cs, err := sensor.CompareAll(sim, ref)
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := os.MkdirAll(con.Output, 0777); err != nil {
		log.Fatal(err.Error())
	}

	for _, c := range cs {
		log.Printf("%s: rms = %g, bias = %g", c.Label, c.RMS, c.Bias)
		if con.ExportCSV {
			name, err := sensor.ExportCSV(con.Output, c)
			if err != nil {
				log.Fatal(err.Error())
			}
			log.Printf("Wrote %s", name)
		}
	}

	names, err := plot.Pressure(con, cs)
	if err != nil {
		log.Fatal(err.Error())
	}
	for _, name := range names {
		log.Printf("Wrote %s", name)
	}
}
