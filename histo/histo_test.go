package histo

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUniform(Te *testing.T) {
	d, err := Uniform(4, 0, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0, 0.5, 1, 1.5, 2}, d)
	_, err = Uniform(0, 0, 2)
	assert.Error(Te, err)
	_, err = Uniform(3, 2, 2)
	assert.Error(Te, err)
}

func TestHistoCounts(Te *testing.T) {
	dividers := []float64{0, 1, 2, 3, 4, 8}
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	H := NewData(dividers, rawdata)
	assert.Equal(Te, []float64{2, 6, 2, 7, 9}, H.View())
	assert.Equal(Te, 26, H.Total())
	assert.Equal(Te, 3, H.Omitted())
	assert.Equal(Te, 26.0, H.Sum())
	assert.Equal(Te, -1, H.ID())

	//AddData must agree with ReHisto
	A := NewData(dividers, nil)
	A.AddData(rawdata...)
	assert.Equal(Te, H.View(), A.View())
	assert.Equal(Te, H.Omitted(), A.Omitted())

	//and the input is left alone
	assert.Equal(Te, 1.0, rawdata[0])
	assert.Equal(Te, 6.0, rawdata[1])
}

func TestClosedLastBin(Te *testing.T) {
	d, err := Uniform(2, 0, math.Pi)
	require.NoError(Te, err)
	open := NewData(d, []float64{0, math.Pi})
	closed := NewClosedData(d, []float64{0, math.Pi})
	assert.Equal(Te, []float64{1, 0}, open.View())
	assert.Equal(Te, []float64{1, 1}, closed.View())
	closed.AddData(math.Pi, 4)
	assert.Equal(Te, []float64{1, 2}, closed.View())
	assert.Equal(Te, 1, closed.Omitted())
	assert.True(Te, closed.Closed())
}

func TestCentersAndScale(Te *testing.T) {
	d, _ := Uniform(4, 0, 2)
	H := NewData(d, []float64{0.1, 0.2, 1.7})
	assert.InDeltaSlice(Te, []float64{0.25, 0.75, 1.25, 1.75}, H.Centers(), 1e-12)
	assert.Equal(Te, []float64{1, 0, 0, 0.5}, H.Scaled(0.5))
	H.Normalize()
	assert.True(Te, H.Normalized())
	assert.InDelta(Te, 1.0, H.Sum(), 1e-12)
	H.AddData(1.1)
	assert.InDelta(Te, 1.0, H.Sum(), 1e-12)
	H.UnNormalize()
	assert.InDelta(Te, 4.0, H.Sum(), 1e-12)
}

func TestHistoAdd(Te *testing.T) {
	d, _ := Uniform(2, 0, 2)
	a := NewData(d, []float64{0.5})
	b := NewData(d, []float64{1.5, 1.2})
	c := NewData(d, nil)
	c.Add(a, b)
	assert.Equal(Te, []float64{1, 2}, c.View())
	assert.Equal(Te, 3, c.Total())
	other, _ := Uniform(3, 0, 2)
	assert.Panics(Te, func() { c.Add(a, NewData(other, nil)) })
}

func TestHistoIO(Te *testing.T) {
	M := NewLabeledMatrix([]string{"Na", "Cl"}, []string{"Na", "Cl"}, []float64{0, 1, 2, 3, 4, 8}, false)
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0}
	r, c, ok := M.Index("Na", "Cl")
	require.True(Te, ok)
	M.NewHisto(r, c, nil, rawdata)
	j, err := json.Marshal(M)
	require.NoError(Te, err)
	var back struct {
		Rows int     `json:"rows"`
		Data []*Data `json:"data"`
	}
	require.NoError(Te, json.Unmarshal(j, &back))
	assert.Equal(Te, 2, back.Rows)
	assert.Equal(Te, M.View(0, 1).View(), back.Data[1].View())
	_, _, ok = M.Index("Na", "K")
	assert.False(Te, ok)
	assert.Error(Te, M.Check(2, 0))
}

func TestMatrixFromAll(Te *testing.T) {
	M := NewMatrix(1, 2, []float64{0, 1, 2})
	M.Fill()
	M.AddData(0, 1, 0.5, 1.5, 1.7)
	sums, err := M.FromAll(func(D *Data) (float64, error) { return D.Sum(), nil })
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{0, 3}}, sums)
}

func TestGaussianFilter(Te *testing.T) {
	//reference values from scipy.ndimage.gaussian_filter1d
	got := GaussianFilter1D(nil, []float64{1, 2, 3, 4, 5}, 1)
	assert.InDeltaSlice(Te, []float64{1.42704095, 2.06782203, 3, 3.93217797, 4.57295905}, got, 1e-7)

	flat := GaussianFilter1D(nil, []float64{2, 2, 2, 2}, 3)
	assert.InDeltaSlice(Te, []float64{2, 2, 2, 2}, flat, 1e-12)

	src := []float64{0, 1, 0}
	assert.Equal(Te, src, GaussianFilter1D(nil, src, 0))

	inplace := []float64{1, 2, 3, 4, 5}
	GaussianFilter1D(inplace, inplace, 1)
	assert.InDeltaSlice(Te, got, inplace, 1e-12)

	w := GaussianKernel1D(2)
	assert.Len(Te, w, 17)
	assert.InDelta(Te, w[0], w[16], 1e-15)
}

func TestSmoothing(Te *testing.T) {
	src := []float64{0, 0, 1, 0, 0}
	none := NoSmoothing()
	assert.False(Te, none.Enabled())
	assert.Equal(Te, src, none.Apply(nil, src))
	s := Sigma(1)
	v, on := s.Value()
	assert.True(Te, on)
	assert.Equal(Te, 1.0, v)
	assert.InDelta(Te, 0.39894347, s.Apply(nil, src)[2], 1e-8)
	assert.Error(Te, Sigma(-1).Validate())
	assert.NoError(Te, Sigma(0).Validate())

	var cfg struct {
		A Smoothing `yaml:"a"`
		B Smoothing `yaml:"b"`
	}
	require.NoError(Te, yaml.Unmarshal([]byte("a: 2.5\nb: null\n"), &cfg))
	assert.Equal(Te, Sigma(2.5), cfg.A)
	assert.Equal(Te, NoSmoothing(), cfg.B)
}
