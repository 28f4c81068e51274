package metric_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warp/metric"
)

// TestBuiltins_Float checks every built-in metric on a float64 pair.
func TestBuiltins_Float(t *testing.T) {
	tests := []struct {
		name string
		m    metric.Metric[float64, float64]
		a, b float64
		want float64
	}{
		{"manhattan", metric.Manhattan[float64, float64]{}, 1.5, -2.0, 3.5},
		{"euclidean", metric.Euclidean[float64, float64]{}, 1.5, -2.0, 3.5},
		{"sqeuclidean", metric.SqEuclidean[float64, float64]{}, 1.5, -2.0, 12.25},
		{"chebyshev", metric.Chebyshev[float64, float64]{}, -2.0, 1.5, 3.5},
		{"hamming different", metric.Hamming[float64, float64]{}, 1, 2, 1},
		{"hamming equal", metric.Hamming[float64, float64]{}, 2, 2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.m.Distance(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

// TestManhattan_NarrowTypesDoNotWrap uses int16 extremes and a uint8 element
// type where naive subtraction would wrap.
func TestManhattan_NarrowTypesDoNotWrap(t *testing.T) {
	wide := metric.Manhattan[int16, int32]{}
	got, err := wide.Distance(math.MaxInt16, math.MinInt16)
	require.NoError(t, err)
	assert.Equal(t, int32(65535), got)

	unsigned := metric.Manhattan[uint8, uint8]{}
	got8, err := unsigned.Distance(3, 250)
	require.NoError(t, err)
	assert.Equal(t, uint8(247), got8)
}

// TestOverflow verifies results that do not fit U are rejected.
func TestOverflow(t *testing.T) {
	m := metric.SqEuclidean[int16, uint8]{}
	_, err := m.Distance(0, 16) // 256 > MaxUint8
	assert.ErrorIs(t, err, metric.ErrOverflow)

	got, err := m.Distance(0, 15)
	require.NoError(t, err)
	assert.Equal(t, uint8(225), got)

	f32 := metric.Manhattan[float64, float32]{}
	_, err = f32.Distance(0, math.MaxFloat64)
	assert.ErrorIs(t, err, metric.ErrOverflow)
}

// TestEuclidean_ExtremeMagnitudes checks that differences near the ends of the
// float64 range neither overflow nor vanish.
func TestEuclidean_ExtremeMagnitudes(t *testing.T) {
	m := metric.Euclidean[float64, float64]{}

	got, err := m.Distance(1e200, -1e200)
	require.NoError(t, err)
	assert.Equal(t, 2e200, got)

	got, err = m.Distance(1e-200, 0)
	require.NoError(t, err)
	assert.Equal(t, 1e-200, got)
	assert.NotZero(t, got, "distinct elements keep a positive distance")
}

// TestIntegers_Exact covers 64-bit elements beyond float64's 53-bit mantissa.
func TestIntegers_Exact(t *testing.T) {
	const big = int64(1) << 62

	for _, m := range []metric.Metric[int64, int64]{
		metric.Manhattan[int64, int64]{},
		metric.Euclidean[int64, int64]{},
		metric.Chebyshev[int64, int64]{},
		metric.SqEuclidean[int64, int64]{},
		metric.Hamming[int64, int64]{},
	} {
		got, err := m.Distance(big+1, big)
		require.NoError(t, err, m.Name())
		assert.Equal(t, int64(1), got, m.Name())
	}

	full := metric.Manhattan[int64, uint64]{}
	got, err := full.Distance(math.MaxInt64, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, err = metric.Manhattan[int64, int64]{}.Distance(math.MaxInt64, math.MinInt64)
	assert.ErrorIs(t, err, metric.ErrOverflow)

	unsigned := metric.Manhattan[uint64, uint64]{}
	gotU, err := unsigned.Distance(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), gotU)

	sq := metric.SqEuclidean[int64, uint64]{}
	gotU, err = sq.Distance(1<<32-1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744065119617025), gotU)

	_, err = sq.Distance(1<<32, 0)
	assert.ErrorIs(t, err, metric.ErrOverflow)

	_, err = metric.Manhattan[int64, int8]{}.Distance(-100, 100)
	assert.ErrorIs(t, err, metric.ErrOverflow)
}

// TestNaNInf verifies non-finite elements are rejected by every built-in.
func TestNaNInf(t *testing.T) {
	for _, name := range metric.Names() {
		m, err := metric.FromName[float64, float64](name, false)
		require.NoError(t, err)

		_, err = m.Distance(math.NaN(), 1)
		assert.ErrorIs(t, err, metric.ErrNaNInf, name)
		_, err = m.Distance(1, math.Inf(-1))
		assert.ErrorIs(t, err, metric.ErrNaNInf, name)
	}
}

// TestFromName covers canonical names, aliases, case folding and the
// expensive flag.
func TestFromName(t *testing.T) {
	for alias, want := range map[string]string{
		"manhattan":   metric.NameManhattan,
		"L1":          metric.NameManhattan,
		" cityblock ": metric.NameManhattan,
		"l2":          metric.NameEuclidean,
		"Euclidean":   metric.NameEuclidean,
		"sqeuclidean": metric.NameSqEuclidean,
		"linf":        metric.NameChebyshev,
		"hamming":     metric.NameHamming,
	} {
		m, err := metric.FromName[int, int](alias, true)
		require.NoError(t, err, alias)
		assert.Equal(t, want, m.Name(), alias)
		assert.True(t, m.IsExpensive(), alias)
	}

	m, err := metric.FromName[int, int]("manhattan", false)
	require.NoError(t, err)
	assert.False(t, m.IsExpensive())

	_, err = metric.FromName[int, int]("cosine", false)
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)
}

// TestNames ensures every listed name resolves to itself.
func TestNames(t *testing.T) {
	names := metric.Names()
	assert.IsIncreasing(t, names)
	for _, n := range names {
		m, err := metric.FromName[float32, float32](n, false)
		require.NoError(t, err)
		assert.Equal(t, n, m.Name())
	}
}

// TestNewFunc checks the adapter forwards calls and errors untouched.
func TestNewFunc(t *testing.T) {
	errDomain := errors.New("domain")
	m := metric.NewFunc("signed", true, func(a, b int) (int, error) {
		if a < 0 {
			return 0, errDomain
		}

		return a - b, nil
	})
	assert.Equal(t, "signed", m.Name())
	assert.True(t, m.IsExpensive())

	got, err := m.Distance(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = m.Distance(-1, 2)
	assert.ErrorIs(t, err, errDomain)

	assert.Panics(t, func() { metric.NewFunc[int, int]("nil", false, nil) })
}
