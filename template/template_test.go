package template

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sphaux/casegen/io"
)

func TestSubstitute(t *testing.T) {
	data := map[string]string{"DR": "0.005", "N": "1700"}

	out := Substitute("dr={{DR}} n={{N}} dr again={{DR}}", data)
	assert.Equal(t, "dr=0.005 n=1700 dr again=0.005", out)

	// A key without a token in the text is a no-op, not an error.
	assert.Equal(t, "nothing here", Substitute("nothing here", data))

	// Unknown tokens are left for the reader to notice.
	assert.Equal(t, "{{UNSET}}", Substitute("{{UNSET}}", data))
}

func TestSubstituteIdempotent(t *testing.T) {
	data := map[string]string{"G": "9.81", "L": "1"}
	text := "<Option name=\"g\" value=\"{{G}}\" /> <Option value=\"{{L}}\" />"

	once := Substitute(text, data)
	twice := Substitute(once, data)
	assert.Equal(t, once, twice)
}

func TestData(t *testing.T) {
	con := &io.DefaultCaseWrapper().Case
	d := con.Derive()
	data := Data(con, d, 88329)

	keys := []string{
		"DR", "HFAC", "CS", "COURANT", "DOMAIN_MIN", "DOMAIN_MAX",
		"GAMMA", "REFD", "VISC_DYN", "DELTA", "G", "N", "L",
	}
	assert.Equal(t, len(keys), len(data))
	for _, k := range keys {
		assert.Contains(t, data, k)
	}

	assert.Equal(t, "88329", data["N"])
	assert.Equal(t, "0.005", data["DR"])
	assert.Equal(t, "4", data["HFAC"])

	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	assert.Equal(t, f(d.DomainMin[0])+", "+f(d.DomainMin[1]),
		data["DOMAIN_MIN"])
	assert.Equal(t, f(d.DomainMax[0])+", "+f(d.DomainMax[1]),
		data["DOMAIN_MAX"])
}

func TestExpand(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	names := []string{"A.xml", "B.xml"}

	err := os.WriteFile(filepath.Join(src, "A.xml"),
		[]byte("<Option value=\"{{DR}}\" />"), 0666)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(src, "B.xml"),
		[]byte("<Fluid n=\"{{N}}\" />"), 0666)
	if err != nil {
		t.Fatal(err)
	}

	data := map[string]string{"DR": "0.005", "N": "42"}
	assert.NoError(t, Expand(src, dst, names, data))

	a, err := os.ReadFile(filepath.Join(dst, "A.xml"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "<Option value=\"0.005\" />", string(a))

	b, err := os.ReadFile(filepath.Join(dst, "B.xml"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "<Fluid n=\"42\" />", string(b))
}

func TestExpandMissingTemplate(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	err := Expand(src, dst, []string{"Missing.xml"}, map[string]string{})
	assert.Error(t, err, "a missing template is fatal")
}
