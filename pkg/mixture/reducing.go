package mixture

import (
	"fmt"
	"math"

	"github.com/ehtick/CoolProp/pkg/helmholtz"
	"github.com/samber/lo"
)

// ReducingFunction supplies the composition-dependent reducing temperature and
// molar density of the mixture together with their first mole-fraction
// derivatives, mole-number-weighted forms and second mixed derivatives, all
// under an explicit differentiation convention. The derivative engine treats
// this purely as a value-returning interface and never substitutes defaults.
type ReducingFunction interface {
	Tr(x []float64) float64
	RhorMolar(x []float64) float64
	DTrDxi(x []float64, i int, flag Convention) float64
	DrhorMolarDxi(x []float64, i int, flag Convention) float64
	NdTrDni(x []float64, i int, flag Convention) float64
	NdrhorDni(x []float64, i int, flag Convention) float64
	DndTrDniDxj(x []float64, i, j int, flag Convention) float64
	DndrhorDniDxj(x []float64, i, j int, flag Convention) float64
}

// vanDerWaalsReducing is the one-fluid quadratic mixing rule: the reducing
// temperature and the reducing molar volume are double sums x_i*x_j over
// symmetric pair matrices built from the pure-component critical constants
// and the binary interaction factors betaT, betaV.
type vanDerWaalsReducing struct {
	tc [][]float64 // pair reducing temperatures [K]
	vc [][]float64 // pair reducing molar volumes [m^3/mol]
}

// NewVanDerWaalsReducing builds the one-fluid reducing function for the given
// components. betaT and betaV must be N x N; their diagonals are expected to
// be 1 so that the pure limits recover the critical constants.
func NewVanDerWaalsReducing(components []*helmholtz.Fluid, betaT, betaV [][]float64) (ReducingFunction, error) {
	n := len(components)
	squareN := func(m [][]float64) bool {
		return len(m) == n && lo.EveryBy(m, func(row []float64) bool { return len(row) == n })
	}
	if !squareN(betaT) || !squareN(betaV) {
		return nil, fmt.Errorf("van der Waals reducing function: interaction matrices must be %vx%v", n, n)
	}

	r := &vanDerWaalsReducing{
		tc: make([][]float64, n),
		vc: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		r.tc[i] = make([]float64, n)
		r.vc[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			r.tc[i][j] = betaT[i][j] * math.Sqrt(components[i].Tc*components[j].Tc)
			cbrt := math.Cbrt(1/components[i].Rhoc) + math.Cbrt(1/components[j].Rhoc)
			r.vc[i][j] = betaV[i][j] * cbrt * cbrt * cbrt / 8
		}
	}
	return r, nil
}

// quadSum evaluates the double sum x_i * x_j * c[i][j].
func quadSum(c [][]float64, x []float64) float64 {
	var sum float64
	for i := range x {
		for j := range x {
			sum += x[i] * x[j] * c[i][j]
		}
	}
	return sum
}

// quadDxi is the first mole-fraction derivative of quadSum under the given
// convention. The dependent form folds in the implicit variation of the last
// mole fraction; its derivative with respect to the eliminated index is zero.
func quadDxi(c [][]float64, x []float64, i int, flag Convention) float64 {
	n := len(x)
	switch flag {
	case XNIndependent:
		var sum float64
		for k := range x {
			sum += x[k] * c[i][k]
		}
		return 2 * sum
	case XNDependent:
		if i == n-1 {
			return 0
		}
		var sum float64
		for k := range x {
			sum += x[k] * (c[i][k] - c[n-1][k])
		}
		return 2 * sum
	}
	panic(ErrInvalidConvention)
}

// quadD2 is the second mixed mole-fraction derivative of quadSum.
func quadD2(c [][]float64, x []float64, i, j int, flag Convention) float64 {
	n := len(x)
	switch flag {
	case XNIndependent:
		return 2 * c[i][j]
	case XNDependent:
		if i == n-1 || j == n-1 {
			return 0
		}
		return 2 * (c[i][j] - c[i][n-1] - c[j][n-1] + c[n-1][n-1])
	}
	panic(ErrInvalidConvention)
}

func (r *vanDerWaalsReducing) Tr(x []float64) float64 {
	return quadSum(r.tc, x)
}

func (r *vanDerWaalsReducing) RhorMolar(x []float64) float64 {
	return 1 / quadSum(r.vc, x)
}

func (r *vanDerWaalsReducing) DTrDxi(x []float64, i int, flag Convention) float64 {
	return quadDxi(r.tc, x, i, flag)
}

func (r *vanDerWaalsReducing) d2TrDxiDxj(x []float64, i, j int, flag Convention) float64 {
	return quadD2(r.tc, x, i, j, flag)
}

func (r *vanDerWaalsReducing) DrhorMolarDxi(x []float64, i int, flag Convention) float64 {
	rhor := r.RhorMolar(x)
	return -rhor * rhor * quadDxi(r.vc, x, i, flag)
}

func (r *vanDerWaalsReducing) d2rhorDxiDxj(x []float64, i, j int, flag Convention) float64 {
	rhor := r.RhorMolar(x)
	dvi := quadDxi(r.vc, x, i, flag)
	dvj := quadDxi(r.vc, x, j, flag)
	return 2*rhor*rhor*rhor*dvi*dvj - rhor*rhor*quadD2(r.vc, x, i, j, flag)
}

// freeVariables is the number of mole fractions treated as free under the
// convention: all N or, with the last fraction eliminated, N-1.
func freeVariables(x []float64, flag Convention) int {
	if flag == XNDependent {
		return len(x) - 1
	}
	return len(x)
}

// ndni converts a mole-fraction derivative g into its mole-number-weighted
// form: n*df/dn_i = g_i - sum(x_k * g_k) over the free variables.
func ndni(g func(x []float64, k int, flag Convention) float64, x []float64, i int, flag Convention) float64 {
	sum := g(x, i, flag)
	for k := 0; k < freeVariables(x, flag); k++ {
		sum -= x[k] * g(x, k, flag)
	}
	return sum
}

// dndniDxj differentiates ndni once more with respect to x_j:
// h_ij - g_j - sum(x_k * h_kj) over the free variables.
func dndniDxj(
	g func(x []float64, k int, flag Convention) float64,
	h func(x []float64, k, j int, flag Convention) float64,
	x []float64, i, j int, flag Convention,
) float64 {
	if flag == XNDependent && j == len(x)-1 {
		return 0
	}
	sum := h(x, i, j, flag) - g(x, j, flag)
	for k := 0; k < freeVariables(x, flag); k++ {
		sum -= x[k] * h(x, k, j, flag)
	}
	return sum
}

func (r *vanDerWaalsReducing) NdTrDni(x []float64, i int, flag Convention) float64 {
	return ndni(r.DTrDxi, x, i, flag)
}

func (r *vanDerWaalsReducing) NdrhorDni(x []float64, i int, flag Convention) float64 {
	return ndni(r.DrhorMolarDxi, x, i, flag)
}

func (r *vanDerWaalsReducing) DndTrDniDxj(x []float64, i, j int, flag Convention) float64 {
	return dndniDxj(r.DTrDxi, r.d2TrDxiDxj, x, i, j, flag)
}

func (r *vanDerWaalsReducing) DndrhorDniDxj(x []float64, i, j int, flag Convention) float64 {
	return dndniDxj(r.DrhorMolarDxi, r.d2rhorDxiDxj, x, i, j, flag)
}
