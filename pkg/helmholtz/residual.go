package helmholtz

import "math"

// ResidualHelmholtz is the capability set shared by pure-fluid residual
// equations of state and binary-pair departure functions: the dimensionless
// residual Helmholtz energy and its derivatives with respect to the
// reciprocal reduced temperature tau and the reduced density delta.
type ResidualHelmholtz interface {
	Alphar(tau, delta float64) float64
	DalpharDDelta(tau, delta float64) float64
	DalpharDTau(tau, delta float64) float64
	D2alpharDDelta2(tau, delta float64) float64
	D2alpharDTau2(tau, delta float64) float64
	D2alpharDDeltaDTau(tau, delta float64) float64
}

// term is one summand of a generalized exponential contribution:
//
//	n * delta^d * tau^t * exp(-delta^l) * exp(-eta*(delta-epsilon)^2 - beta*(delta-gamma))
//
// where the exp(-delta^l) factor is active only when l > 0 and the
// gaussian-bell factor only when gaussian is set.
type term struct {
	n, d, t                   float64
	l                         float64
	gaussian                  bool
	eta, epsilon, beta, gamma float64
}

// expPart returns the exponential factor of the term at delta together with
// the first and second derivatives of its logarithm.
func (tm term) expPart(delta float64) (u, gp, gpp float64) {
	g := 0.0
	if tm.l > 0 {
		g -= math.Pow(delta, tm.l)
		gp -= tm.l * math.Pow(delta, tm.l-1)
		gpp -= tm.l * (tm.l - 1) * math.Pow(delta, tm.l-2)
	}
	if tm.gaussian {
		g += -tm.eta*(delta-tm.epsilon)*(delta-tm.epsilon) - tm.beta*(delta-tm.gamma)
		gp += -2*tm.eta*(delta-tm.epsilon) - tm.beta
		gpp += -2 * tm.eta
	}
	return math.Exp(g), gp, gpp
}

// GeneralizedExponential evaluates a sum of generalized exponential terms. It
// is the single numerical kernel behind every departure-function variant and
// every pure-fluid residual equation in this package. Immutable once built.
type GeneralizedExponential struct {
	terms []term
}

func (phi *GeneralizedExponential) addPower(n, d, t, l []float64) {
	for k := range n {
		phi.terms = append(phi.terms, term{n: n[k], d: d[k], t: t[k], l: l[k]})
	}
}

func (phi *GeneralizedExponential) addGaussian(n, d, t, eta, epsilon, beta, gamma []float64) {
	for k := range n {
		phi.terms = append(phi.terms, term{
			n: n[k], d: d[k], t: t[k],
			gaussian: true,
			eta:      eta[k], epsilon: epsilon[k], beta: beta[k], gamma: gamma[k],
		})
	}
}

func (phi *GeneralizedExponential) Alphar(tau, delta float64) float64 {
	var sum float64
	for _, tm := range phi.terms {
		u, _, _ := tm.expPart(delta)
		sum += tm.n * math.Pow(delta, tm.d) * math.Pow(tau, tm.t) * u
	}
	return sum
}

func (phi *GeneralizedExponential) DalpharDDelta(tau, delta float64) float64 {
	var sum float64
	for _, tm := range phi.terms {
		u, gp, _ := tm.expPart(delta)
		sum += tm.n * math.Pow(tau, tm.t) * u *
			(tm.d*math.Pow(delta, tm.d-1) + math.Pow(delta, tm.d)*gp)
	}
	return sum
}

func (phi *GeneralizedExponential) DalpharDTau(tau, delta float64) float64 {
	var sum float64
	for _, tm := range phi.terms {
		u, _, _ := tm.expPart(delta)
		sum += tm.n * tm.t * math.Pow(delta, tm.d) * math.Pow(tau, tm.t-1) * u
	}
	return sum
}

func (phi *GeneralizedExponential) D2alpharDDelta2(tau, delta float64) float64 {
	var sum float64
	for _, tm := range phi.terms {
		u, gp, gpp := tm.expPart(delta)
		sum += tm.n * math.Pow(tau, tm.t) * u *
			(tm.d*(tm.d-1)*math.Pow(delta, tm.d-2) +
				2*tm.d*math.Pow(delta, tm.d-1)*gp +
				math.Pow(delta, tm.d)*(gpp+gp*gp))
	}
	return sum
}

func (phi *GeneralizedExponential) D2alpharDTau2(tau, delta float64) float64 {
	var sum float64
	for _, tm := range phi.terms {
		u, _, _ := tm.expPart(delta)
		sum += tm.n * tm.t * (tm.t - 1) * math.Pow(delta, tm.d) * math.Pow(tau, tm.t-2) * u
	}
	return sum
}

func (phi *GeneralizedExponential) D2alpharDDeltaDTau(tau, delta float64) float64 {
	var sum float64
	for _, tm := range phi.terms {
		u, gp, _ := tm.expPart(delta)
		sum += tm.n * tm.t * math.Pow(tau, tm.t-1) * u *
			(tm.d*math.Pow(delta, tm.d-1) + math.Pow(delta, tm.d)*gp)
	}
	return sum
}
