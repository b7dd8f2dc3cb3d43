package sensor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

// Row is one aligned sample of a comparison in the CSV export.
type Row struct {
	T   float64 `csv:"t"`
	Sim float64 `csv:"p_sim"`
	Ref float64 `csv:"p_ref"`
	Err float64 `csv:"err"`
}

// ExportCSV writes the aligned series of c to <dir>/<label>.csv and returns
// the file name.
func ExportCSV(dir string, c *Comparison) (string, error) {
	name := filepath.Join(dir, strings.ToLower(c.Label)+".csv")
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rows := make([]*Row, len(c.T))
	for i := range rows {
		rows[i] = &Row{T: c.T[i], Sim: c.Sim[i], Ref: c.Ref[i], Err: c.Err[i]}
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		return "", err
	}
	return name, nil
}
