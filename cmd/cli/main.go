package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/ehtick/CoolProp/pkg/mixture"
)

var (
	validConventions = []string{"independent", "dependent"}
	conventions      = map[string]mixture.Convention{
		"independent": mixture.XNIndependent,
		"dependent":   mixture.XNDependent,
	}
)

func main() {
	var (
		inputFile  string
		convention string
		T          float64
		rho        float64
		p          float64
	)
	flag.StringVar(&inputFile, "input", "", "path to the mixture description JSON")
	flag.StringVar(&convention, "convention", "dependent", fmt.Sprintf("mole-fraction differentiation convention: %v", strings.Join(validConventions, " | ")))
	flag.Float64Var(&T, "T", 300, "temperature [K]")
	flag.Float64Var(&rho, "rho", 0, "molar density [mol/m^3]")
	flag.Float64Var(&p, "p", 0, "pressure [Pa]; used instead of -rho when positive")
	flag.Parse()

	if inputFile == "" {
		log.Fatal("missing required -input flag")
	}
	if !slices.Contains(validConventions, convention) {
		log.Fatalf("invalid convention %q, expected one of: %v", convention, strings.Join(validConventions, ", "))
	}
	xnFlag := conventions[convention]
	if err := xnFlag.Validate(); err != nil {
		log.Fatalf("cannot use convention %q: %v", convention, err)
	}

	input, err := mixture.InputFromJson(inputFile)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	state, err := input.BuildState()
	if err != nil {
		log.Fatalf("cannot build mixture state: %v", err)
	}

	switch {
	case p > 0:
		if err := state.UpdateTP(T, p); err != nil {
			log.Fatalf("cannot reach state point: %v", err)
		}
	case rho > 0:
		state.Update(T, rho)
	default:
		log.Fatal("one of -rho or -p must be positive")
	}

	fmt.Printf("T = %v K, rho = %v mol/m^3, p = %.2f Pa (convention: %v)\n",
		state.T(), state.Rhomolar(), state.P(), xnFlag)
	fmt.Printf("tau = %.8f, delta = %.8f, Tr = %.4f K, rhor = %.4f mol/m^3\n\n",
		state.Tau(), state.Delta(), state.Tr(), state.Rhor())

	for i, name := range input.Components {
		fmt.Printf("%v (x = %.4f)\n", name, state.MoleFractions()[i])
		fmt.Printf("  fugacity              = %14.4f Pa\n", mixture.Fugacity(state, i, xnFlag))
		fmt.Printf("  ln(phi)               = %14.6e\n", mixture.LnFugacityCoefficient(state, i, xnFlag))
		fmt.Printf("  partial molar volume  = %14.6e m^3/mol\n", mixture.PartialMolarVolume(state, i, xnFlag))
		fmt.Printf("  dln(phi)/dT (const p) = %14.6e 1/K\n", mixture.DlnFugacityCoefficientDT(state, i, xnFlag))
		fmt.Printf("  dln(phi)/dp (const T) = %14.6e 1/Pa\n", mixture.DlnFugacityCoefficientDp(state, i, xnFlag))
	}
}
