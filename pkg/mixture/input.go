package mixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ehtick/CoolProp/pkg/helmholtz"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// DepartureInput describes one binary-pair departure function of a mixture
// input file.
type DepartureInput struct {
	Pair    []string // the two component names
	Type    string   // "GERG-2008" or "Exponential"
	F       float64
	N       []float64
	D       []float64
	T       []float64
	L       []float64
	Eta     []float64
	Epsilon []float64
	Beta    []float64
	Gamma   []float64
	NPower  int `mapstructure:"nPower"`
}

// MixtureInput is the JSON description of a mixture: catalogued component
// names, composition, reducing interaction matrices and departure functions.
type MixtureInput struct {
	Components    []string
	MoleFractions []float64   `mapstructure:"moleFractions"`
	BetaT         [][]float64 `mapstructure:"betaT"`
	BetaV         [][]float64 `mapstructure:"betaV"`
	Departure     []DepartureInput
}

func InputFromJson(file string) (MixtureInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return MixtureInput{}, err
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return MixtureInput{}, err
	}

	var input MixtureInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return MixtureInput{}, err
	}
	return input, nil
}

// ones builds an n x n matrix filled with 1, the neutral interaction matrix.
func ones(n int) [][]float64 {
	return lo.Times(n, func(int) []float64 {
		return lo.Times(n, func(int) float64 { return 1 })
	})
}

func (in DepartureInput) build() (helmholtz.DepartureFunction, error) {
	switch in.Type {
	case "GERG-2008":
		eta, epsilon, beta, gamma := in.Eta, in.Epsilon, in.Beta, in.Gamma
		if in.NPower == len(in.N) && eta == nil {
			// Pure power form: the gaussian columns may be omitted entirely.
			zeros := make([]float64, len(in.N))
			eta, epsilon, beta, gamma = zeros, zeros, zeros, zeros
		}
		return helmholtz.NewGERG2008DepartureFunction(in.N, in.D, in.T, eta, epsilon, beta, gamma, in.NPower)
	case "Exponential":
		return helmholtz.NewExponentialDepartureFunction(in.N, in.D, in.T, in.L)
	}
	return nil, fmt.Errorf("unknown departure function type %q", in.Type)
}

// BuildState resolves the input against the fluid catalogue and assembles a
// ready mixture state.
func (in MixtureInput) BuildState() (*State, error) {
	if len(in.Components) != len(in.MoleFractions) {
		return nil, fmt.Errorf("mixture input: %v components but %v mole fractions",
			len(in.Components), len(in.MoleFractions))
	}

	components := lo.Map(in.Components, func(name string, _ int) *helmholtz.Fluid {
		return helmholtz.FluidByName(name)
	})
	if idx := lo.IndexOf(components, nil); idx != -1 {
		return nil, fmt.Errorf("mixture input: unknown component %q", in.Components[idx])
	}

	n := len(components)
	betaT, betaV := in.BetaT, in.BetaV
	if betaT == nil {
		betaT = ones(n)
	}
	if betaV == nil {
		betaV = ones(n)
	}
	reducing, err := NewVanDerWaalsReducing(components, betaT, betaV)
	if err != nil {
		return nil, err
	}

	excess := NewExcessTerm(n)
	for _, dep := range in.Departure {
		if len(dep.Pair) != 2 {
			return nil, fmt.Errorf("mixture input: departure pair must name two components, got %v", dep.Pair)
		}
		i := lo.IndexOf(in.Components, dep.Pair[0])
		j := lo.IndexOf(in.Components, dep.Pair[1])
		if i == -1 || j == -1 || i == j {
			return nil, fmt.Errorf("mixture input: departure pair %v does not match two distinct components", dep.Pair)
		}
		fn, err := dep.build()
		if err != nil {
			return nil, err
		}
		excess.SetPair(i, j, fn, dep.F)
	}

	state, err := NewState(components, reducing, excess)
	if err != nil {
		return nil, err
	}
	if err := state.SetMoleFractions(in.MoleFractions); err != nil {
		return nil, err
	}
	return state, nil
}
