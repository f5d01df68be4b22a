package mixture

import (
	"fmt"
	"math"

	"github.com/ehtick/CoolProp/pkg/helmholtz"
)

// GasConstant is the universal gas constant [J/(mol K)].
const GasConstant = 8.314462618

// State is the mixture-state object: the components, the reducing-parameter
// model and the excess term, together with the current temperature, molar
// density, mole fractions and the reduced variables derived from them. The
// derivative engine reads it and never writes it; callers that mutate the
// state between derivative calls must serialize their writes themselves.
type State struct {
	components []*helmholtz.Fluid
	reducing   ReducingFunction
	excess     *ExcessTerm
	x          []float64

	t        float64
	rhomolar float64
	tr       float64
	rhor     float64
	tau      float64
	delta    float64
}

func NewState(components []*helmholtz.Fluid, reducing ReducingFunction, excess *ExcessTerm) (*State, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("mixture state: at least one component is required")
	}
	if excess == nil || excess.n != len(components) {
		return nil, fmt.Errorf("mixture state: excess term must be sized for %v components", len(components))
	}
	if reducing == nil {
		return nil, fmt.Errorf("mixture state: reducing function is required")
	}
	return &State{
		components: components,
		reducing:   reducing,
		excess:     excess,
		x:          make([]float64, len(components)),
	}, nil
}

// SetMoleFractions stores a copy of x. The reduced variables are stale until
// the next Update; keeping the caller's invariant sum(x) = 1 is the caller's
// responsibility.
func (s *State) SetMoleFractions(x []float64) error {
	if len(x) != len(s.components) {
		return fmt.Errorf("mixture state: expected %v mole fractions, got %v", len(s.components), len(x))
	}
	copy(s.x, x)
	return nil
}

// Update recomputes the reducing parameters and the reduced state for the
// given temperature [K] and molar density [mol/m^3] at the current
// composition.
func (s *State) Update(T, rhomolar float64) {
	s.t = T
	s.rhomolar = rhomolar
	s.tr = s.reducing.Tr(s.x)
	s.rhor = s.reducing.RhorMolar(s.x)
	s.tau = s.tr / T
	s.delta = rhomolar / s.rhor
}

// UpdateTP solves for the molar density matching the given temperature [K]
// and pressure [Pa] by Newton iteration from the ideal-gas estimate, then
// updates the reduced state. Iteration runs down to machine precision so that
// derived quantities can be finite-differenced across pressure states. Only
// single-root (gas-like) regions converge.
func (s *State) UpdateTP(T, p float64) error {
	rho := p / (GasConstant * T)
	for iter := 0; iter < 200; iter++ {
		s.Update(T, rho)
		step := (s.P() - p) / DpDrho(s)
		next := rho - step
		if next <= 0 || math.IsNaN(next) {
			return fmt.Errorf("mixture state: density iteration left the physical domain at T=%v, p=%v", T, p)
		}
		if math.Abs(step) <= 1e-13*rho {
			s.Update(T, next)
			return nil
		}
		rho = next
	}
	return fmt.Errorf("mixture state: density iteration did not converge at T=%v, p=%v", T, p)
}

func (s *State) T() float64 { return s.t }

func (s *State) Rhomolar() float64 { return s.rhomolar }

func (s *State) Tau() float64 { return s.tau }

func (s *State) Delta() float64 { return s.delta }

func (s *State) Tr() float64 { return s.tr }

func (s *State) Rhor() float64 { return s.rhor }

func (s *State) R() float64 { return GasConstant }

// MoleFractions returns the live composition slice; treat it as read-only.
func (s *State) MoleFractions() []float64 { return s.x }

// P is the pressure [Pa] from the virial-like identity p = rho*R*T*(1 + delta*dalphar/ddelta).
func (s *State) P() float64 {
	return s.rhomolar * GasConstant * s.t * (1 + s.delta*s.DalpharDDelta())
}

// totalResidual composes the mixture residual quantity from the linear
// composition-weighted pure-component parts and the excess term.
func (s *State) totalResidual(
	pure func(helmholtz.ResidualHelmholtz, float64, float64) float64,
	excess func(float64, float64, []float64) float64,
) float64 {
	var sum float64
	for i, c := range s.components {
		sum += s.x[i] * pure(c.EOS, s.tau, s.delta)
	}
	return sum + excess(s.tau, s.delta, s.x)
}

func (s *State) Alphar() float64 {
	return s.totalResidual(helmholtz.ResidualHelmholtz.Alphar, s.excess.Alphar)
}

func (s *State) DalpharDDelta() float64 {
	return s.totalResidual(helmholtz.ResidualHelmholtz.DalpharDDelta, s.excess.DalpharDDelta)
}

func (s *State) DalpharDTau() float64 {
	return s.totalResidual(helmholtz.ResidualHelmholtz.DalpharDTau, s.excess.DalpharDTau)
}

func (s *State) D2alpharDDelta2() float64 {
	return s.totalResidual(helmholtz.ResidualHelmholtz.D2alpharDDelta2, s.excess.D2alpharDDelta2)
}

func (s *State) D2alpharDTau2() float64 {
	return s.totalResidual(helmholtz.ResidualHelmholtz.D2alpharDTau2, s.excess.D2alpharDTau2)
}

func (s *State) D2alpharDDeltaDTau() float64 {
	return s.totalResidual(helmholtz.ResidualHelmholtz.D2alpharDDeltaDTau, s.excess.D2alpharDDeltaDTau)
}
