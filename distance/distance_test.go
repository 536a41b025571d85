package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/unit"
)

type meters = vecunits.Vector3[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter]

func m(x, y, z float64) meters {
	return vecunits.New[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](x, y, z)
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     meters
		expected float64
	}{
		{"Simple", m(1, 2, 3), m(4, 5, 6), 27},
		{"Zero", m(0, 0, 0), m(0, 0, 0), 0},
		{"Identical", m(1, 2, 3), m(1, 2, 3), 0},
		{"Mixed", m(1, -1, 0), m(-1, 1, 0), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-12)
		})
	}
}

func TestAcrossLayouts(t *testing.T) {
	a := m(1, 0, 0)
	b := vecunits.New[float64, unit.Length, unit.Centimeter, unit.Foot, unit.Inch](100, 0, 0)

	assert.InDelta(t, 0, L2(a, b), 1e-12)
	assert.InDelta(t, 1, Cosine(a, b), 1e-12)

	c := vecunits.New[float64, unit.Length, unit.Centimeter, unit.Centimeter, unit.Centimeter](0, 300, 400)
	assert.InDelta(t, 5, Norm(c), 1e-12)
	assert.InDelta(t, 0, Cosine(a, c), 1e-12)
	assert.InDelta(t, math.Sqrt(26), L2(a, c), 1e-12)
}

func TestCosineZero(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(m(0, 0, 0), m(1, 2, 3)))
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "L2", MetricL2.String())
		assert.Equal(t, "SquaredL2", MetricSquaredL2.String())
		assert.Equal(t, "Cosine", MetricCosine.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](MetricSquaredL2)
		require.NoError(t, err)
		assert.InDelta(t, 27, f(m(1, 2, 3), m(4, 5, 6)), 1e-12)

		f, err = Provider[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](MetricL2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(27), f(m(1, 2, 3), m(4, 5, 6)), 1e-12)

		f, err = Provider[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](MetricCosine)
		require.NoError(t, err)
		assert.InDelta(t, 1, f(m(1, 2, 3), m(2, 4, 6)), 1e-12)

		_, err = Provider[float64, unit.Length, unit.Meter, unit.Meter, unit.Meter](Metric(99))
		assert.Error(t, err)
	})
}
