package adf

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	chem "github.com/rmera/rdfadf"
	"github.com/rmera/rdfadf/histo"
	"github.com/rmera/rdfadf/pbc"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

var bigCell = [9]float64{20, 0, 0, 0, 20, 0, 0, 0, 20}

// line returns an O atom at the origin with H atoms at +1 and -1 along x.
func line(Te *testing.T) *chem.Structure {
	S, err := chem.NewStructureFromSymbols([]string{"O", "H", "H"}, []float64{0, 0, 0, 1, 0, 0, -1, 0, 0}, bigCell)
	require.NoError(Te, err)
	return S
}

func quiet() *Options {
	o := DefaultOptions()
	l, _ := test.NewNullLogger()
	o.Logger(l)
	return o
}

func random(Te *testing.T, seed int64) *chem.Structure {
	r := rand.New(rand.NewSource(seed))
	symbols := []string{"Si", "O", "O", "Si", "O", "O", "Na", "O", "Si", "O", "O", "Na"}
	c := make([]float64, 3*len(symbols))
	for i := range c {
		c[i] = 7 * r.Float64()
	}
	S, err := chem.NewStructureFromSymbols(symbols, c, [9]float64{7, 0, 0, 1, 6.5, 0, 0.5, -0.5, 7.2})
	require.NoError(Te, err)
	return S
}

func TestCollinear(Te *testing.T) {
	C, err := General(line(Te), "O", "All", "All", 2, 180, histo.NoSmoothing(), 0, 2)
	require.NoError(Te, err)
	require.Equal(Te, 180, C.Len())
	assert.Equal(Te, 1, C.Events)
	assert.Equal(Te, 1.0, C.Raw[179])
	assert.Equal(Te, 1.0, floats.Sum(C.Raw))
	assert.InDelta(Te, math.Pi, C.Theta[179], math.Pi/180)
	assert.Equal(Te, C.Raw, C.Smooth)

	//with every atom as center, each H sees the O and the other H in the same direction.
	o := quiet()
	o.Rcut(2)
	C, err = ADF(line(Te), o)
	require.NoError(Te, err)
	assert.Equal(Te, 3, C.Centers)
	assert.Equal(Te, 3, C.Events)
	assert.InDelta(Te, 2.0/3, C.Raw[0], 1e-15)
	assert.InDelta(Te, 1.0/3, C.Raw[179], 1e-15)
}

func TestDistanceWindow(Te *testing.T) {
	o := quiet()
	l, hook := test.NewNullLogger()
	o.Logger(l)
	o.Rcut(2)
	o.RMin(1.5)
	C, err := ADF(line(Te), o)
	require.NoError(Te, err)
	//only the H-H distances are in the window, and no center has two of them.
	assert.Equal(Te, 0, C.Events)
	require.NotNil(Te, hook.LastEntry())
	assert.Equal(Te, logrus.WarnLevel, hook.LastEntry().Level)

	o.RMin(0)
	o.RMax(1)
	C, err = ADF(line(Te), o)
	require.NoError(Te, err)
	assert.Equal(Te, 1, C.Events)
	assert.Equal(Te, 1.0/3, C.Raw[179])
}

func TestWindowBeyondCutoff(Te *testing.T) {
	o := quiet()
	l, hook := test.NewNullLogger()
	o.Logger(l)
	o.Rcut(1.5)
	o.RMax(3)
	C, err := ADF(line(Te), o)
	require.NoError(Te, err)
	//the H-H pairs at 2 are beyond the cutoff, so only the angle at O is found.
	assert.Equal(Te, 1, C.Events)
	warned := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["r_max"] == 3.0 {
			warned = true
		}
	}
	assert.True(Te, warned)

	hook.Reset()
	o.RMax(1.5)
	_, err = ADF(line(Te), o)
	require.NoError(Te, err)
	assert.Empty(Te, hook.AllEntries())
}

func TestPairCount(Te *testing.T) {
	S := random(Te, 11)
	o := quiet()
	o.Rcut(3.2)
	o.RMin(1)
	o.RMax(3)
	C, err := ADF(S, o)
	require.NoError(Te, err)
	L, err := pbc.NeighborsOf(S, 3.2)
	require.NoError(Te, err)
	expected := 0
	for i := 0; i < L.Len(); i++ {
		k := 0
		for _, n := range L.Neighbors(i) {
			d := r3.Norm(pbc.Separation(S.Coords, S.Cell, i, n))
			if d >= 1 && d <= 3 {
				k++
			}
		}
		expected += k * (k - 1) / 2
	}
	require.Greater(Te, expected, 0)
	assert.Equal(Te, expected, C.Events)
	assert.Equal(Te, float64(C.Events), floats.Sum(C.Counts))
	assert.InDelta(Te, float64(expected)/float64(S.Len()), floats.Sum(C.Raw), 1e-9)
	for _, t := range C.Theta {
		assert.True(Te, t > 0 && t < math.Pi)
	}
}

func TestLabelOrder(Te *testing.T) {
	S, err := chem.NewStructureFromSymbols([]string{"O", "H", "F"}, []float64{0, 0, 0, 1, 0, 0, 0.6, 1, 0}, bigCell)
	require.NoError(Te, err)
	o := quiet()
	o.Rcut(2)
	o.Labels("O", "H", "F")
	HF, err := ADF(S, o)
	require.NoError(Te, err)
	o.Labels("O", "F", "H")
	FH, err := ADF(S, o)
	require.NoError(Te, err)
	//the pair is only counted when the first neighbor comes first in the list.
	assert.Equal(Te, 1, HF.Events+FH.Events)
	o.Labels("O", "All", "All")
	C, err := ADF(S, o)
	require.NoError(Te, err)
	assert.Equal(Te, 1, C.Events)
	assert.Equal(Te, 1.0, C.Raw[59])
}

func TestSmoothing(Te *testing.T) {
	S := random(Te, 5)
	o := quiet()
	o.Rcut(3)
	C, err := ADF(S, o)
	require.NoError(Te, err)
	C.Smooth[0] = 100
	assert.NotEqual(Te, C.Raw[0], C.Smooth[0])

	o.Smoothing(histo.Sigma(2))
	C, err = ADF(S, o)
	require.NoError(Te, err)
	assert.NotEqual(Te, C.Raw, C.Smooth)
	assert.Equal(Te, histo.GaussianFilter1D(nil, C.Raw, 2), C.Smooth)
	assert.InDelta(Te, floats.Sum(C.Raw), floats.Sum(C.Smooth), 1e-9)
}

func TestCpusGiveSameResult(Te *testing.T) {
	S := random(Te, 19)
	o := quiet()
	o.Rcut(4)
	o.Cpus(1)
	C1, err := ADF(S, o)
	require.NoError(Te, err)
	o.Cpus(7)
	C7, err := ADF(S, o)
	require.NoError(Te, err)
	assert.Equal(Te, C1, C7)
}

func TestInputUntouched(Te *testing.T) {
	S := line(Te)
	S.SetPBC(false, true, false)
	o := quiet()
	o.Rcut(2)
	_, err := ADF(S, o)
	require.NoError(Te, err)
	assert.Equal(Te, [3]bool{false, true, false}, S.PBC())
}

func TestErrors(Te *testing.T) {
	S := line(Te)
	cases := map[string]func(o *Options){
		"rmin>rmax": func(o *Options) { o.RMin(3); o.RMax(2) },
		"rmin<0":    func(o *Options) { o.RMin(-1) },
		"bins":      func(o *Options) { o.Bins(-4) },
		"rcut":      func(o *Options) { o.Rcut(0) },
		"sigma":     func(o *Options) { o.Smoothing(histo.Sigma(math.NaN())) },
	}
	for name, f := range cases {
		o := quiet()
		f(o)
		_, err := ADF(S, o)
		assert.True(Te, errors.Is(err, chem.ErrInvalidParameter), name)
	}
	for _, l := range [][3]string{{"Xx", "All", "All"}, {"O", "G0", "All"}, {"O", "All", "P8"}} {
		o := quiet()
		o.Labels(l[0], l[1], l[2])
		_, err := ADF(S, o)
		assert.True(Te, errors.Is(err, chem.ErrInvalidLabel), "%v", l)
	}
	o := quiet()
	o.Labels("Na")
	_, err := ADF(S, o)
	assert.True(Te, errors.Is(err, chem.ErrNoMatchingAtoms))
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	c, n1, n2 := o.Labels()
	assert.Equal(Te, []string{"All", "All", "All"}, []string{c, n1, n2})
	assert.Equal(Te, 6.0, o.RMax())
	o.Rcut(4)
	assert.Equal(Te, 4.0, o.RMax())
	o.RMax(3)
	assert.Equal(Te, 3.0, o.RMax())
	o.UnsetRMax()
	assert.Equal(Te, 4.0, o.RMax())
	assert.False(Te, o.Smoothing().Enabled())

	o, err := OptionsFromYAML([]byte("center: O\nneigh1: H\nr_max: 1.5\nsigma: 2\nbins: 90\n"))
	require.NoError(Te, err)
	c, n1, n2 = o.Labels()
	assert.Equal(Te, []string{"O", "H", "All"}, []string{c, n1, n2})
	assert.Equal(Te, 1.5, o.RMax())
	assert.Equal(Te, 90, o.Bins())
	assert.True(Te, o.Smoothing().Enabled())

	o, err = OptionsFromYAML([]byte("sigma: null\n"))
	require.NoError(Te, err)
	assert.False(Te, o.Smoothing().Enabled())

	for _, bad := range []string{"r_min: 3\nr_max: 2\n", "colour: blue\n", "bins: many\n"} {
		_, err = OptionsFromYAML([]byte(bad))
		assert.True(Te, errors.Is(err, chem.ErrInvalidParameter), bad)
	}
}
