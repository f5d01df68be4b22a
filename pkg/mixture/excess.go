package mixture

import "github.com/ehtick/CoolProp/pkg/helmholtz"

// pairEval selects which (tau, delta) derivative of a binary-pair departure
// function a summation uses. Interface method expressions
// (helmholtz.DepartureFunction.Alphar and friends) are passed directly.
type pairEval func(fn helmholtz.DepartureFunction, tau, delta float64) float64

// ExcessTerm aggregates the N x N matrix of binary-pair departure functions
// and the N x N weighting matrix F into the whole-mixture excess Helmholtz
// energy. Sized once when the component count is fixed, immutable afterwards.
//
// Symmetry of the pair interaction is structural: SetPair stores the same
// departure-function handle in the (i, j) and (j, i) cells. The diagonal is
// never evaluated (F[i][i] is unused).
type ExcessTerm struct {
	n         int
	departure [][]helmholtz.DepartureFunction
	f         [][]float64
}

func NewExcessTerm(n int) *ExcessTerm {
	e := &ExcessTerm{}
	e.Resize(n)
	return e
}

// Resize re-allocates both matrices for n components, discarding prior content.
func (e *ExcessTerm) Resize(n int) {
	e.n = n
	e.departure = make([][]helmholtz.DepartureFunction, n)
	e.f = make([][]float64, n)
	for i := 0; i < n; i++ {
		e.departure[i] = make([]helmholtz.DepartureFunction, n)
		e.f[i] = make([]float64, n)
	}
}

// SetPair assigns the departure function and weighting factor of the binary
// pair (i, j), sharing the same handle between the symmetric cells.
func (e *ExcessTerm) SetPair(i, j int, fn helmholtz.DepartureFunction, f float64) {
	e.departure[i][j] = fn
	e.departure[j][i] = fn
	e.f[i][j] = f
	e.f[j][i] = f
}

// pairTerm is the weighted pair contribution F[i][j] * ev(alphar_ij).
func (e *ExcessTerm) pairTerm(ev pairEval, tau, delta float64, i, j int) float64 {
	return e.f[i][j] * ev(e.departure[i][j], tau, delta)
}

// pairSum is the composition-weighted double sum over all unordered pairs,
// shared by the six tau/delta aggregate operations.
func (e *ExcessTerm) pairSum(ev pairEval, tau, delta float64, x []float64) float64 {
	var sum float64
	for i := 0; i < e.n-1; i++ {
		for j := i + 1; j < e.n; j++ {
			sum += x[i] * x[j] * e.pairTerm(ev, tau, delta, i, j)
		}
	}
	return sum
}

func (e *ExcessTerm) Alphar(tau, delta float64, x []float64) float64 {
	return e.pairSum(helmholtz.DepartureFunction.Alphar, tau, delta, x)
}

func (e *ExcessTerm) DalpharDDelta(tau, delta float64, x []float64) float64 {
	return e.pairSum(helmholtz.DepartureFunction.DalpharDDelta, tau, delta, x)
}

func (e *ExcessTerm) DalpharDTau(tau, delta float64, x []float64) float64 {
	return e.pairSum(helmholtz.DepartureFunction.DalpharDTau, tau, delta, x)
}

func (e *ExcessTerm) D2alpharDDelta2(tau, delta float64, x []float64) float64 {
	return e.pairSum(helmholtz.DepartureFunction.D2alpharDDelta2, tau, delta, x)
}

func (e *ExcessTerm) D2alpharDTau2(tau, delta float64, x []float64) float64 {
	return e.pairSum(helmholtz.DepartureFunction.D2alpharDTau2, tau, delta, x)
}

func (e *ExcessTerm) D2alpharDDeltaDTau(tau, delta float64, x []float64) float64 {
	return e.pairSum(helmholtz.DepartureFunction.D2alpharDDeltaDTau, tau, delta, x)
}

// dxiSum is the first mole-fraction derivative of the pair double sum at
// fixed tau, delta with every mole fraction treated as free (the
// independent-variable convention; dependent-convention corrections live in
// the derivative engine).
func (e *ExcessTerm) dxiSum(ev pairEval, tau, delta float64, x []float64, i int) float64 {
	var sum float64
	for k := 0; k < e.n; k++ {
		if k == i {
			continue
		}
		sum += x[k] * e.pairTerm(ev, tau, delta, i, k)
	}
	return sum
}

func (e *ExcessTerm) DalpharDxi(tau, delta float64, x []float64, i int) float64 {
	return e.dxiSum(helmholtz.DepartureFunction.Alphar, tau, delta, x, i)
}

func (e *ExcessTerm) D2alpharDxiDTau(tau, delta float64, x []float64, i int) float64 {
	return e.dxiSum(helmholtz.DepartureFunction.DalpharDTau, tau, delta, x, i)
}

func (e *ExcessTerm) D2alpharDxiDDelta(tau, delta float64, x []float64, i int) float64 {
	return e.dxiSum(helmholtz.DepartureFunction.DalpharDDelta, tau, delta, x, i)
}

// D2alpharDxiDxj is the second mixed mole-fraction derivative: the excess term
// is linear in each x_i individually, so the result is F[i][j] * alphar_ij off
// the diagonal and zero on it.
func (e *ExcessTerm) D2alpharDxiDxj(tau, delta float64, x []float64, i, j int) float64 {
	if i == j {
		return 0
	}
	return e.pairTerm(helmholtz.DepartureFunction.Alphar, tau, delta, i, j)
}
