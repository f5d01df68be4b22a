package mixture

import (
	"math"

	"github.com/ehtick/CoolProp/pkg/helmholtz"
)

// The mixture derivative engine: a catalogue of pure functions over *State
// implementing the GERG-2008 / Gernert closed-form derivative identities.
// Every function recomputes from the current (tau, delta, x); nothing is
// cached. Composition sums run over the free mole fractions of the requested
// convention: the full component range when all fractions are independent,
// the first N-1 when the last one is eliminated.

// scalarField bundles the pure-component and binary-pair views of one
// (tau, delta) scalar so that the dual-convention dispatch can be applied
// uniformly to alphar and to its tau and delta derivatives.
type scalarField struct {
	pure   func(helmholtz.ResidualHelmholtz, float64, float64) float64
	pair   pairEval
	excess func(e *ExcessTerm, tau, delta float64, x []float64, i int) float64
}

var (
	fieldAlphar = scalarField{
		pure:   helmholtz.ResidualHelmholtz.Alphar,
		pair:   helmholtz.DepartureFunction.Alphar,
		excess: (*ExcessTerm).DalpharDxi,
	}
	fieldDalpharDTau = scalarField{
		pure:   helmholtz.ResidualHelmholtz.DalpharDTau,
		pair:   helmholtz.DepartureFunction.DalpharDTau,
		excess: (*ExcessTerm).D2alpharDxiDTau,
	}
	fieldDalpharDDelta = scalarField{
		pure:   helmholtz.ResidualHelmholtz.DalpharDDelta,
		pair:   helmholtz.DepartureFunction.DalpharDDelta,
		excess: (*ExcessTerm).D2alpharDxiDDelta,
	}
)

// dxiScalar is the dual-convention dispatch shared by every first
// mole-fraction derivative. Independent: pure-component part plus the excess
// term's own derivative. Dependent: the triangle correction over the boundary
// pairs (i, N-1) and (k, N-1), with the eliminated index returning zero.
func dxiScalar(s *State, f scalarField, i int, flag Convention) float64 {
	switch flag {
	case XNIndependent:
		return f.pure(s.components[i].EOS, s.tau, s.delta) +
			f.excess(s.excess, s.tau, s.delta, s.x, i)
	case XNDependent:
		n := len(s.x)
		if i == n-1 {
			return 0
		}
		result := f.pure(s.components[i].EOS, s.tau, s.delta) -
			f.pure(s.components[n-1].EOS, s.tau, s.delta)
		boundary := s.excess.pairTerm(f.pair, s.tau, s.delta, i, n-1)
		result += (1 - 2*s.x[i]) * boundary
		for k := 0; k < n-1; k++ {
			if k == i {
				continue
			}
			result += s.x[k] * (s.excess.pairTerm(f.pair, s.tau, s.delta, i, k) -
				boundary -
				s.excess.pairTerm(f.pair, s.tau, s.delta, k, n-1))
		}
		return result
	}
	panic(ErrInvalidConvention)
}

// DalpharDxi is the derivative of the mixture residual Helmholtz energy with
// respect to mole fraction i at fixed tau and delta.
func DalpharDxi(s *State, i int, flag Convention) float64 {
	return dxiScalar(s, fieldAlphar, i, flag)
}

func D2alpharDxiDTau(s *State, i int, flag Convention) float64 {
	return dxiScalar(s, fieldDalpharDTau, i, flag)
}

func D2alpharDxiDDelta(s *State, i int, flag Convention) float64 {
	return dxiScalar(s, fieldDalpharDDelta, i, flag)
}

// D2alpharDxiDxj is the second mixed mole-fraction derivative at fixed tau
// and delta.
func D2alpharDxiDxj(s *State, i, j int, flag Convention) float64 {
	switch flag {
	case XNIndependent:
		return s.excess.D2alpharDxiDxj(s.tau, s.delta, s.x, i, j)
	case XNDependent:
		n := len(s.x)
		if i == n-1 {
			return 0
		}
		boundaryI := s.excess.pairTerm(helmholtz.DepartureFunction.Alphar, s.tau, s.delta, i, n-1)
		if i == j {
			return -2 * boundaryI
		}
		if j == n-1 {
			return 0
		}
		return s.excess.pairTerm(helmholtz.DepartureFunction.Alphar, s.tau, s.delta, i, j) -
			boundaryI -
			s.excess.pairTerm(helmholtz.DepartureFunction.Alphar, s.tau, s.delta, j, n-1)
	}
	panic(ErrInvalidConvention)
}

// NdalpharDni is n*dalphar/dn_i at constant T, V and n_j: the composition
// derivative chained through the reducing parameters plus the direct
// mole-fraction part.
func NdalpharDni(s *State, i int, flag Convention) float64 {
	term1 := s.delta * s.DalpharDDelta() * (1 - s.reducing.NdrhorDni(s.x, i, flag)/s.rhor)
	term2 := s.tau * s.DalpharDTau() * s.reducing.NdTrDni(s.x, i, flag) / s.tr

	var sum float64
	for k := 0; k < freeVariables(s.x, flag); k++ {
		sum += s.x[k] * DalpharDxi(s, k, flag)
	}
	return term1 + term2 + DalpharDxi(s, i, flag) - sum
}

// DnalpharDni is d(n*alphar)/dn_i at constant T, V and n_j (GERG 7.42).
func DnalpharDni(s *State, i int, flag Convention) float64 {
	return s.Alphar() + NdalpharDni(s, i, flag)
}

// Fugacity of component i [Pa].
func Fugacity(s *State, i int, flag Convention) float64 {
	return s.x[i] * s.rhomolar * GasConstant * s.t * math.Exp(DnalpharDni(s, i, flag))
}

func LnFugacityCoefficient(s *State, i int, flag Convention) float64 {
	return s.Alphar() + NdalpharDni(s, i, flag) - math.Log(1+s.delta*s.DalpharDDelta())
}

// DlnFugacityDT is dln(f_i)/dT at constant molar density and composition.
func DlnFugacityDT(s *State, i int, flag Convention) float64 {
	return (1 - s.tau*s.DalpharDTau() - s.tau*DndalpharDniDTau(s, i, flag)) / s.t
}

// DlnFugacityDrho is dln(f_i)/drho at constant temperature and composition.
func DlnFugacityDrho(s *State, i int, flag Convention) float64 {
	return (1 + s.delta*s.DalpharDDelta() + s.delta*DndalpharDniDDelta(s, i, flag)) / s.rhomolar
}

func D2nalpharDniDT(s *State, i int, flag Convention) float64 {
	return -s.tau / s.t * (s.DalpharDTau() + DndalpharDniDTau(s, i, flag))
}

// DlnFugacityCoefficientDT is dln(phi_i)/dT at constant pressure and
// composition.
func DlnFugacityCoefficientDT(s *State, i int, flag Convention) float64 {
	return D2nalpharDniDT(s, i, flag) + 1/s.t -
		PartialMolarVolume(s, i, flag)/(GasConstant*s.t)*DpDT(s)
}

// PartialMolarVolume [m^3/mol].
func PartialMolarVolume(s *State, i int, flag Convention) float64 {
	return -NdpdNi(s, i, flag) / NdpdV(s)
}

// DlnFugacityCoefficientDp is dln(phi_i)/dp at constant temperature and
// composition (GERG 7.30).
func DlnFugacityCoefficientDp(s *State, i int, flag Convention) float64 {
	return PartialMolarVolume(s, i, flag)/(GasConstant*s.t) - 1/s.P()
}

// DlnFugacityDtau is dln(f_i)/dtau at constant delta and composition.
func DlnFugacityDtau(s *State, i int, flag Convention) float64 {
	return -1/s.tau + s.DalpharDTau() + DndalpharDniDTau(s, i, flag)
}

// DlnFugacityDdelta is dln(f_i)/ddelta at constant tau and composition.
func DlnFugacityDdelta(s *State, i int, flag Convention) float64 {
	return 1 + s.delta*s.DalpharDDelta() + s.delta*DndalpharDniDDelta(s, i, flag)
}

// DlnFugacityDxj is dln(f_i)/dx_j at constant temperature, molar density and
// the other mole fractions.
func DlnFugacityDxj(s *State, i, j int, flag Convention) float64 {
	n := len(s.x)
	dTrDxj := s.reducing.DTrDxi(s.x, j, flag)
	drhorDxj := s.reducing.DrhorMolarDxi(s.x, j, flag)

	line1 := DlnFugacityDtau(s, i, flag) * dTrDxj / s.t
	line2 := -DlnFugacityDdelta(s, i, flag) * drhorDxj / s.rhor
	line3 := drhorDxj/s.rhor + dTrDxj/s.tr
	line4 := DalpharDxi(s, j, flag) + DndalpharDniDxj(s, i, j, flag)

	// d(ln x_i)/dx_j: under the dependent convention a derivative of the
	// eliminated fraction picks up dx_N/dx_j = -1.
	if flag == XNDependent && i == n-1 {
		line3 -= 1 / s.x[n-1]
	} else if i == j {
		line3 += 1 / s.x[j]
	}
	return line1 + line2 + line3 + line4
}

// D2nalpharDxjDni is the mixed derivative of n*alphar with respect to n_i and
// x_j at constant T and V.
func D2nalpharDxjDni(s *State, i, j int, flag Convention) float64 {
	return DndalpharDniDxjConstTV(s, i, j, flag) + DalpharDxjConstTV(s, j, flag)
}

// DlnFugacityCoefficientDxj is dln(phi_i)/dx_j at constant temperature,
// pressure and the other mole fractions (Gernert 3.115).
func DlnFugacityCoefficientDxj(s *State, i, j int, flag Convention) float64 {
	return D2nalpharDxjDni(s, i, j, flag) -
		PartialMolarVolume(s, i, flag)/(GasConstant*s.t)*DpDxj(s, j, flag)
}

// DpDxj is dp/dx_j at constant temperature, total volume and the other mole
// fractions (Gernert 3.130).
func DpDxj(s *State, j int, flag Convention) float64 {
	return s.rhomolar * GasConstant * s.t *
		(DdeltaDxj(s, j, flag)*s.DalpharDDelta() + s.delta*DdalpharDdeltaDxj(s, j, flag))
}

// DdalpharDdeltaDxj chains d(dalphar/ddelta)/dx_j through tau and delta at
// constant T and V (Gernert 3.134).
func DdalpharDdeltaDxj(s *State, j int, flag Convention) float64 {
	return s.D2alpharDDelta2()*DdeltaDxj(s, j, flag) +
		s.D2alpharDDeltaDTau()*DtauDxj(s, j, flag) +
		D2alpharDxiDDelta(s, j, flag)
}

// DalpharDxjConstTV is dalphar/dx_j at constant T and V (Gernert 3.119).
func DalpharDxjConstTV(s *State, j int, flag Convention) float64 {
	return s.DalpharDDelta()*DdeltaDxj(s, j, flag) +
		s.DalpharDTau()*DtauDxj(s, j, flag) +
		DalpharDxi(s, j, flag)
}

// DndalpharDniDxjConstTV is d(n*dalphar/dn_i)/dx_j at constant T and V
// (Gernert 3.118).
func DndalpharDniDxjConstTV(s *State, i, j int, flag Convention) float64 {
	return DndalpharDniDxj(s, i, j, flag) +
		DdeltaDxj(s, j, flag)*DndalpharDniDDelta(s, i, flag) +
		DtauDxj(s, j, flag)*DndalpharDniDTau(s, i, flag)
}

// DdeltaDxj is ddelta/dx_j at constant T and V (Gernert 3.121).
func DdeltaDxj(s *State, j int, flag Convention) float64 {
	return -s.delta / s.rhor * s.reducing.DrhorMolarDxi(s.x, j, flag)
}

// DtauDxj is dtau/dx_j at constant T and V (Gernert 3.122).
func DtauDxj(s *State, j int, flag Convention) float64 {
	return s.reducing.DTrDxi(s.x, j, flag) / s.t
}

// DpDT is dp/dT at constant volume and composition.
func DpDT(s *State) float64 {
	return s.rhomolar * GasConstant *
		(1 + s.delta*s.DalpharDDelta() - s.delta*s.tau*s.D2alpharDDeltaDTau())
}

// DpDrho is dp/drho at constant temperature and composition.
func DpDrho(s *State) float64 {
	return GasConstant * s.t *
		(1 + 2*s.delta*s.DalpharDDelta() + s.delta*s.delta*s.D2alpharDDelta2())
}

// NdpdV is n*dp/dV at constant temperature and total moles.
func NdpdV(s *State) float64 {
	return -s.rhomolar * s.rhomolar * GasConstant * s.t *
		(1 + 2*s.delta*s.DalpharDDelta() + s.delta*s.delta*s.D2alpharDDelta2())
}

// NdpdNi is n*dp/dn_i at constant T, V and n_j (GERG 7.63 and 7.64).
func NdpdNi(s *State, i int, flag Convention) float64 {
	ndrhorDni := s.reducing.NdrhorDni(s.x, i, flag)
	ndTrDni := s.reducing.NdTrDni(s.x, i, flag)

	var sum float64
	for k := 0; k < freeVariables(s.x, flag); k++ {
		sum += s.x[k] * D2alpharDxiDDelta(s, k, flag)
	}
	nd2alpharDniDDelta := s.delta*s.D2alpharDDelta2()*(1-ndrhorDni/s.rhor) +
		s.tau*s.D2alpharDDeltaDTau()*ndTrDni/s.tr +
		D2alpharDxiDDelta(s, i, flag) - sum

	return s.rhomolar * GasConstant * s.t *
		(1 + s.delta*s.DalpharDDelta()*(2-ndrhorDni/s.rhor) + s.delta*nd2alpharDniDDelta)
}

// NdlnFugacityCoefficientDnj is n*dln(phi_i)/dn_j at constant T and p.
func NdlnFugacityCoefficientDnj(s *State, i, j int, flag Convention) float64 {
	return Nd2nalpharDniDnj(s, j, i, flag) + 1 -
		PartialMolarVolume(s, j, flag)/(GasConstant*s.t)*NdpdNi(s, i, flag)
}

// NddeltaDni is n*ddelta/dn_i at constant T, V and n_j.
func NddeltaDni(s *State, i int, flag Convention) float64 {
	return s.delta - s.delta/s.rhor*s.reducing.NdrhorDni(s.x, i, flag)
}

// NdtauDni is n*dtau/dn_i at constant T, V and n_j.
func NdtauDni(s *State, i int, flag Convention) float64 {
	return s.tau / s.tr * s.reducing.NdTrDni(s.x, i, flag)
}

// DndalpharDniDxj is d(n*dalphar/dn_i)/dx_j at constant delta, tau and the
// other mole fractions: one further composition derivative over NdalpharDni,
// chained through both reducing-parameter Jacobians.
func DndalpharDniDxj(s *State, i, j int, flag Convention) float64 {
	ndrhorDni := s.reducing.NdrhorDni(s.x, i, flag)
	ndTrDni := s.reducing.NdTrDni(s.x, i, flag)

	line1 := s.delta * D2alpharDxiDDelta(s, j, flag) * (1 - ndrhorDni/s.rhor)
	line2 := -s.delta * s.DalpharDDelta() / s.rhor *
		(s.reducing.DndrhorDniDxj(s.x, i, j, flag) - s.reducing.DrhorMolarDxi(s.x, j, flag)*ndrhorDni/s.rhor)
	line3 := s.tau * D2alpharDxiDTau(s, j, flag) * ndTrDni / s.tr
	line4 := s.tau * s.DalpharDTau() / s.tr *
		(s.reducing.DndTrDniDxj(s.x, i, j, flag) - s.reducing.DTrDxi(s.x, j, flag)*ndTrDni/s.tr)

	var sum float64
	for k := 0; k < freeVariables(s.x, flag); k++ {
		sum += s.x[k] * D2alpharDxiDxj(s, j, k, flag)
	}
	line5 := D2alpharDxiDxj(s, i, j, flag) - DalpharDxi(s, j, flag) - sum

	return line1 + line2 + line3 + line4 + line5
}

// Nd2nalpharDniDnj is n*d2(n*alphar)/dn_i/dn_j at constant T and V (GERG 7.46).
func Nd2nalpharDniDnj(s *State, i, j int, flag Convention) float64 {
	line0 := NdalpharDni(s, j, flag)
	line1 := DndalpharDniDDelta(s, i, flag) * NddeltaDni(s, j, flag)
	line2 := DndalpharDniDTau(s, i, flag) * NdtauDni(s, j, flag)

	var sum float64
	for k := 0; k < freeVariables(s.x, flag); k++ {
		sum += s.x[k] * DndalpharDniDxj(s, i, k, flag)
	}
	line3 := DndalpharDniDxj(s, i, j, flag) - sum

	return line0 + line1 + line2 + line3
}

// DndalpharDniDDelta is d(n*dalphar/dn_i)/ddelta at constant tau and
// composition.
func DndalpharDniDDelta(s *State, i int, flag Convention) float64 {
	term1 := (s.delta*s.D2alpharDDelta2() + s.DalpharDDelta()) *
		(1 - s.reducing.NdrhorDni(s.x, i, flag)/s.rhor)
	term2 := s.tau * s.D2alpharDDeltaDTau() * s.reducing.NdTrDni(s.x, i, flag) / s.tr

	term3 := D2alpharDxiDDelta(s, i, flag)
	for k := 0; k < freeVariables(s.x, flag); k++ {
		term3 -= s.x[k] * D2alpharDxiDDelta(s, k, flag)
	}
	return term1 + term2 + term3
}

// DndalpharDniDTau is d(n*dalphar/dn_i)/dtau at constant delta and
// composition.
func DndalpharDniDTau(s *State, i int, flag Convention) float64 {
	term1 := s.delta * s.D2alpharDDeltaDTau() * (1 - s.reducing.NdrhorDni(s.x, i, flag)/s.rhor)
	term2 := (s.tau*s.D2alpharDTau2() + s.DalpharDTau()) * s.reducing.NdTrDni(s.x, i, flag) / s.tr

	term3 := D2alpharDxiDTau(s, i, flag)
	for k := 0; k < freeVariables(s.x, flag); k++ {
		term3 -= s.x[k] * D2alpharDxiDTau(s, k, flag)
	}
	return term1 + term2 + term3
}
