package rdf

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	chem "github.com/rmera/rdfadf"
	"github.com/rmera/rdfadf/histo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func pair(Te *testing.T) *chem.Structure {
	S, err := chem.NewStructureFromSymbols([]string{"Na", "Cl"}, []float64{0, 0, 0, 2.5, 2.5, 2.5}, [9]float64{5, 0, 0, 0, 5, 0, 0, 0, 5})
	require.NoError(Te, err)
	return S
}

// rockSalt returns the conventional cubic cell of NaCl with lattice constant a.
func rockSalt(Te *testing.T, a float64) *chem.Structure {
	frac := []float64{
		0, 0, 0, 0, .5, .5, .5, 0, .5, .5, .5, 0,
		.5, 0, 0, 0, .5, 0, 0, 0, .5, .5, .5, .5,
	}
	floats.Scale(a, frac)
	S, err := chem.NewStructureFromSymbols([]string{"Na", "Na", "Na", "Na", "Cl", "Cl", "Cl", "Cl"}, frac, [9]float64{a, 0, 0, 0, a, 0, 0, 0, a})
	require.NoError(Te, err)
	return S
}

func quiet() *Options {
	o := DefaultOptions()
	l, _ := test.NewNullLogger()
	o.Logger(l)
	return o
}

func TestPairPeak(Te *testing.T) {
	S := pair(Te)
	C, err := General(S, "Na", "Cl", 5, 50, 0)
	require.NoError(Te, err)
	require.Equal(Te, 50, C.Len())
	assert.Equal(Te, 1, C.Centers)
	//the 8 images of Cl at the corners of the cube around Na
	assert.Equal(Te, 8, C.Events)
	assert.InDelta(Te, 4.35, C.R[43], 1e-12)
	for i, v := range C.Raw {
		if i == 43 {
			assert.Equal(Te, 8.0, v)
			continue
		}
		assert.Equal(Te, 0.0, v, "bin %d", i)
	}
	assert.Equal(Te, C.Raw, C.Smooth)
	assert.Equal(Te, 8.0, C.CumRaw[49])
}

func TestCutoffIsStrict(Te *testing.T) {
	S := pair(Te)
	o := quiet()
	l, hook := test.NewNullLogger()
	o.Logger(l)
	o.Rcut(5)
	o.Bins(50)
	//the Na images are exactly at 5
	C, err := RDF(S, "Na", "Na", o)
	require.NoError(Te, err)
	assert.Equal(Te, 0, C.Events)
	assert.Equal(Te, 0.0, floats.Sum(C.Raw))
	require.NotNil(Te, hook.LastEntry())
	assert.Equal(Te, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(Te, 1, hook.LastEntry().Data["center_atoms"])
}

func TestRockSaltShells(Te *testing.T) {
	S := rockSalt(Te, 5.64)
	o := quiet()
	o.Rcut(3)
	o.Bins(30)
	o.Smoothing(histo.NoSmoothing())
	C, err := RDF(S, "Na", "Cl", o)
	require.NoError(Te, err)
	assert.Equal(Te, 4, C.Centers)
	assert.Equal(Te, 24, C.Events)
	assert.Equal(Te, 6.0, C.Raw[28])
	assert.Equal(Te, float64(C.Events), floats.Sum(C.Counts))

	//same thing, through the periodic table
	G, err := RDF(S, "G1", "p", o)
	require.NoError(Te, err)
	assert.Equal(Te, C.Raw, G.Raw)

	o.Rcut(4.5)
	o.Bins(45)
	C, err = RDF(S, "Na", "Na", o)
	require.NoError(Te, err)
	assert.Equal(Te, 12.0, C.Raw[39])
	assert.Equal(Te, 48, C.Events)
}

func TestInvariants(Te *testing.T) {
	S := rockSalt(Te, 5.64)
	o := quiet()
	o.Rcut(6)
	o.Bins(60)
	o.Smoothing(histo.Sigma(1.5))
	C, err := RDF(S, "All", "All", o)
	require.NoError(Te, err)
	assert.Equal(Te, float64(C.Events), floats.Sum(C.Counts))
	for k := range C.R {
		r := C.R[k]
		assert.Equal(Te, C.Raw[k]/(4*math.Pi*((r+1e-8)*(r+1e-8))), C.RawShell[k])
		assert.Equal(Te, C.Smooth[k]/(4*math.Pi*((r+1e-8)*(r+1e-8))), C.SmoothShell[k])
		if k > 0 {
			assert.GreaterOrEqual(Te, C.CumRaw[k], C.CumRaw[k-1])
		}
	}
	assert.InDelta(Te, floats.Sum(C.Raw), C.CumRaw[len(C.CumRaw)-1], 1e-9)
	assert.InDelta(Te, floats.Sum(C.Smooth), C.CumSmooth[len(C.CumSmooth)-1], 1e-9)
	//reflecting boundaries keep the total
	assert.InDelta(Te, floats.Sum(C.Raw), floats.Sum(C.Smooth), 1e-9)
}

func TestCpusGiveSameResult(Te *testing.T) {
	S := rockSalt(Te, 4.1)
	o := quiet()
	o.Rcut(9)
	o.Cpus(1)
	C1, err := RDF(S, "All", "Cl", o)
	require.NoError(Te, err)
	o.Cpus(5)
	C5, err := RDF(S, "All", "Cl", o)
	require.NoError(Te, err)
	assert.Equal(Te, C1, C5)
}

func TestAbsentNeighbor(Te *testing.T) {
	C, err := RDF(pair(Te), "Na", "K", quiet())
	require.NoError(Te, err)
	assert.Equal(Te, 0, C.Events)
	for _, v := range C.Smooth {
		assert.Equal(Te, 0.0, v)
	}
}

func TestErrors(Te *testing.T) {
	S := pair(Te)
	_, err := RDF(S, "Xx", "Cl", quiet())
	assert.True(Te, errors.Is(err, chem.ErrInvalidLabel), "%v", err)
	_, err = RDF(S, "Na", "G19", quiet())
	assert.True(Te, errors.Is(err, chem.ErrInvalidLabel), "%v", err)
	_, err = RDF(S, "K", "Cl", quiet())
	assert.True(Te, errors.Is(err, chem.ErrNoMatchingAtoms), "%v", err)
	_, err = RDF(S, "d", "Cl", quiet())
	assert.True(Te, errors.Is(err, chem.ErrNoMatchingAtoms), "%v", err)

	o := quiet()
	o.Bins(0)
	o.Rcut(-1)
	o.Smoothing(histo.Sigma(-2))
	_, err = RDF(S, "Na", "Cl", o)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, chem.ErrInvalidParameter))
	assert.Contains(Te, err.Error(), "bins")
	assert.Contains(Te, err.Error(), "rcut")
	assert.Contains(Te, err.Error(), "sigma")

	S.Atom(1).Symbol = "Zz"
	_, err = RDF(S, "Na", "All", quiet())
	assert.True(Te, errors.Is(err, chem.ErrUnknownSymbol), "%v", err)
}

func TestInputUntouched(Te *testing.T) {
	S := pair(Te)
	S.SetPBC(false)
	before := S.Coords.Copy3()
	C, err := RDF(S, "Na", "Cl", quiet())
	require.NoError(Te, err)
	assert.Equal(Te, [3]bool{}, S.PBC())
	assert.True(Te, before.Equal(S.Coords, 0))
	//periodic images were used anyway
	assert.Greater(Te, C.Events, 1)
}

func TestOptionsFromYAML(Te *testing.T) {
	o, err := OptionsFromYAML([]byte("rcut: 4.5\nbins: 45\nsigma: null\ncpus: 2\n"))
	require.NoError(Te, err)
	assert.Equal(Te, 4.5, o.Rcut())
	assert.Equal(Te, 45, o.Bins())
	assert.False(Te, o.Smoothing().Enabled())
	assert.Equal(Te, 2, o.Cpus())

	o, err = OptionsFromYAML([]byte("sigma: 0.5\n"))
	require.NoError(Te, err)
	s, on := o.Smoothing().Value()
	assert.True(Te, on)
	assert.Equal(Te, 0.5, s)
	assert.Equal(Te, 10.0, o.Rcut())

	o, err = OptionsFromYAML(nil)
	require.NoError(Te, err)
	assert.Equal(Te, 200, o.Bins())

	for _, bad := range []string{"foo: 1\n", "bins: 0\n", "rcut: abc\n", "sigma: -1\n"} {
		_, err = OptionsFromYAML([]byte(bad))
		assert.True(Te, errors.Is(err, chem.ErrInvalidParameter), bad)
	}
}

func TestPartials(Te *testing.T) {
	S := rockSalt(Te, 5.64)
	o := quiet()
	o.Rcut(3)
	o.Bins(30)
	M, err := Partials(S, o)
	require.NoError(Te, err)
	rows, cols := M.Labels()
	assert.Equal(Te, []string{"Cl", "Na"}, rows)
	assert.Equal(Te, rows, cols)
	r, c, ok := M.Index("Na", "Cl")
	require.True(Te, ok)
	assert.Equal(Te, 6.0, M.View(r, c).View()[28])
	r, c, _ = M.Index("Cl", "Na")
	assert.Equal(Te, 6.0, M.View(r, c).View()[28])
	r, c, _ = M.Index("Na", "Na")
	assert.Equal(Te, 0.0, M.View(r, c).Sum())

	C, err := RDF(S, "Cl", "Na", o)
	require.NoError(Te, err)
	r, c, _ = M.Index("Cl", "Na")
	assert.Equal(Te, C.Raw, M.View(r, c).View())
}

func TestCurvesJSON(Te *testing.T) {
	C, err := RDF(pair(Te), "Na", "Cl", quiet())
	require.NoError(Te, err)
	b, err := json.Marshal(C)
	require.NoError(Te, err)
	var m map[string]interface{}
	require.NoError(Te, json.Unmarshal(b, &m))
	for _, k := range []string{"r", "g_raw_norm", "g_smooth", "g_raw_shellnorm", "g_smooth_shellnorm", "cumulative_raw", "cumulative_smooth"} {
		assert.Len(Te, m[k], 200, k)
	}
	assert.Equal(Te, 1.0, m["center_atoms"])
}
