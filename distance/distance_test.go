package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	assert.InDelta(t, 25.0, SquaredL2([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.Zero(t, SquaredL2([]float64{1.5, -2}, []float64{1.5, -2}))
}

func TestL1(t *testing.T) {
	assert.InDelta(t, 7.0, L1([]float64{0, 0}, []float64{3, -4}), 1e-12)
}

func TestProvider(t *testing.T) {
	f, err := Provider(MetricSquaredL2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f([]float64{0, 0}, []float64{1, 1}), 1e-12)

	f, err = Provider(MetricL1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, f([]float64{0, 0}, []float64{1, 1}), 1e-12)

	_, err = Provider(Metric(999))
	assert.Error(t, err)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "SquaredL2", MetricSquaredL2.String())
	assert.Equal(t, "L1", MetricL1.String())
	assert.Equal(t, "Unknown(999)", Metric(999).String())
}
