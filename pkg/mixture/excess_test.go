package mixture

import (
	"testing"

	"github.com/ehtick/CoolProp/pkg/helmholtz"
	"github.com/stretchr/testify/assert"
)

func testDeparture(t *testing.T, n, d, tExp []float64) helmholtz.DepartureFunction {
	t.Helper()
	fn, err := helmholtz.NewExponentialDepartureFunction(n, d, tExp, make([]float64, len(n)))
	assert.Nil(t, err)
	return fn
}

// threeComponentExcess wires three distinct pair departure functions so the
// index arithmetic is exercised beyond the binary case.
func threeComponentExcess(t *testing.T) *ExcessTerm {
	t.Helper()
	e := NewExcessTerm(3)
	e.SetPair(0, 1, testDeparture(t, []float64{0.4, -0.1}, []float64{1, 2}, []float64{0.9, 1.4}), 1.0)
	e.SetPair(0, 2, testDeparture(t, []float64{0.2}, []float64{1}, []float64{1.1}), 0.77)
	e.SetPair(1, 2, testDeparture(t, []float64{-0.3, 0.05}, []float64{2, 3}, []float64{0.6, 1.8}), 0.013)
	return e
}

func TestPairSumMatchesManualSummation(t *testing.T) {
	e := threeComponentExcess(t)
	tau, delta := 1.1, 0.4
	x := []float64{0.2, 0.3, 0.5}

	var manual float64
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			manual += x[i] * x[j] * (e.f[i][j] * e.departure[i][j].Alphar(tau, delta))
		}
	}
	assert.Equal(t, manual, e.Alphar(tau, delta, x))
}

func TestDalpharDxiStructure(t *testing.T) {
	e := threeComponentExcess(t)
	tau, delta := 1.1, 0.4
	x := []float64{0.2, 0.3, 0.5}

	for i := 0; i < 3; i++ {
		var manual float64
		for k := 0; k < 3; k++ {
			if k == i {
				continue
			}
			manual += e.f[i][k] * x[k] * e.departure[i][k].Alphar(tau, delta)
		}
		assert.InEpsilon(t, manual, e.DalpharDxi(tau, delta, x, i), 1e-14)
	}
}

func TestD2alpharDxiDxjStructure(t *testing.T) {
	e := threeComponentExcess(t)
	tau, delta := 1.1, 0.4
	x := []float64{0.2, 0.3, 0.5}

	for i := 0; i < 3; i++ {
		assert.Zero(t, e.D2alpharDxiDxj(tau, delta, x, i, i))
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			expected := e.f[i][j] * e.departure[i][j].Alphar(tau, delta)
			assert.Equal(t, expected, e.D2alpharDxiDxj(tau, delta, x, i, j))
			// Structural symmetry: both cells hold the same handle.
			assert.Equal(t, e.D2alpharDxiDxj(tau, delta, x, i, j), e.D2alpharDxiDxj(tau, delta, x, j, i))
		}
	}
}

func TestAggregateFiniteDifferences(t *testing.T) {
	e := threeComponentExcess(t)
	tau, delta := 1.1, 0.4
	x := []float64{0.2, 0.3, 0.5}
	const h = 1e-6

	numeric := (e.Alphar(tau, delta+h, x) - e.Alphar(tau, delta-h, x)) / (2 * h)
	assert.InEpsilon(t, numeric, e.DalpharDDelta(tau, delta, x), 1e-8)

	numeric = (e.Alphar(tau+h, delta, x) - e.Alphar(tau-h, delta, x)) / (2 * h)
	assert.InEpsilon(t, numeric, e.DalpharDTau(tau, delta, x), 1e-8)

	numeric = (e.DalpharDDelta(tau, delta+h, x) - e.DalpharDDelta(tau, delta-h, x)) / (2 * h)
	assert.InEpsilon(t, numeric, e.D2alpharDDelta2(tau, delta, x), 1e-8)

	numeric = (e.DalpharDTau(tau+h, delta, x) - e.DalpharDTau(tau-h, delta, x)) / (2 * h)
	assert.InEpsilon(t, numeric, e.D2alpharDTau2(tau, delta, x), 1e-8)

	numeric = (e.DalpharDDelta(tau+h, delta, x) - e.DalpharDDelta(tau-h, delta, x)) / (2 * h)
	assert.InEpsilon(t, numeric, e.D2alpharDDeltaDTau(tau, delta, x), 1e-8)

	// dxi family against an unpaired composition perturbation at fixed tau, delta.
	for i := 0; i < 3; i++ {
		xp := append([]float64{}, x...)
		xm := append([]float64{}, x...)
		xp[i] += h
		xm[i] -= h
		numeric = (e.Alphar(tau, delta, xp) - e.Alphar(tau, delta, xm)) / (2 * h)
		assert.InEpsilon(t, numeric, e.DalpharDxi(tau, delta, x, i), 1e-8)

		numeric = (e.DalpharDTau(tau, delta, xp) - e.DalpharDTau(tau, delta, xm)) / (2 * h)
		assert.InEpsilon(t, numeric, e.D2alpharDxiDTau(tau, delta, x, i), 1e-8)

		numeric = (e.DalpharDDelta(tau, delta, xp) - e.DalpharDDelta(tau, delta, xm)) / (2 * h)
		assert.InEpsilon(t, numeric, e.D2alpharDxiDDelta(tau, delta, x, i), 1e-8)
	}
}

func TestResizeDiscardsContent(t *testing.T) {
	e := threeComponentExcess(t)
	e.Resize(2)

	assert.Equal(t, 2, e.n)
	assert.Zero(t, e.f[0][1])
	assert.Nil(t, e.departure[0][1])
}

func TestSetPairSharesHandle(t *testing.T) {
	e := NewExcessTerm(2)
	fn := testDeparture(t, []float64{0.4}, []float64{1}, []float64{0.9})
	e.SetPair(0, 1, fn, 0.5)

	assert.Same(t, e.departure[0][1], e.departure[1][0])
	assert.Equal(t, e.f[0][1], e.f[1][0])
}
