package helmholtz

import (
	"fmt"

	"github.com/samber/lo"
)

// DepartureFunction is the excess Helmholtz-energy contribution of one binary
// pair (i, j). It is a pure function of (tau, delta); composition weighting is
// applied one layer up, by the excess term. The pair interaction is symmetric,
// so the same instance may be shared between the (i, j) and (j, i) matrix
// cells.
type DepartureFunction interface {
	ResidualHelmholtz
}

func sameLength(arrays ...[]float64) bool {
	return lo.EveryBy(arrays, func(a []float64) bool { return len(a) == len(arrays[0]) })
}

// NewGERG2008DepartureFunction builds a departure function of the GERG-2008
// form: nPower leading pure power terms followed by power terms carrying a
// gaussian-bell factor exp(-eta*(delta-epsilon)^2 - beta*(delta-gamma)).
func NewGERG2008DepartureFunction(n, d, t, eta, epsilon, beta, gamma []float64, nPower int) (DepartureFunction, error) {
	if !sameLength(n, d, t, eta, epsilon, beta, gamma) {
		return nil, fmt.Errorf("GERG-2008 departure function: coefficient arrays have mismatched lengths")
	}
	if nPower < 0 || nPower > len(n) {
		return nil, fmt.Errorf("GERG-2008 departure function: nPower %v out of range [0, %v]", nPower, len(n))
	}

	phi := &GeneralizedExponential{}
	phi.addPower(n[:nPower], d[:nPower], t[:nPower], make([]float64, nPower))
	phi.addGaussian(n[nPower:], d[nPower:], t[nPower:], eta[nPower:], epsilon[nPower:], beta[nPower:], gamma[nPower:])
	return phi, nil
}

// NewExponentialDepartureFunction builds a departure function of the
// polynomial/exponential form n * delta^d * tau^t * exp(-delta^l).
func NewExponentialDepartureFunction(n, d, t, l []float64) (DepartureFunction, error) {
	if !sameLength(n, d, t, l) {
		return nil, fmt.Errorf("exponential departure function: coefficient arrays have mismatched lengths")
	}

	phi := &GeneralizedExponential{}
	phi.addPower(n, d, t, l)
	return phi, nil
}
