package main

import (
	"fmt"
	"log"

	"github.com/ehtick/CoolProp/pkg/mixture"
)

// Demonstration state: a 25/75 ethane/propane gas mixture with the
// generalized alkane departure function.
const (
	Temperature  = 300.0 // K
	MolarDensity = 300.0 // mol/m^3
)

func main() {
	input := mixture.MixtureInput{
		Components:    []string{"Ethane", "Propane"},
		MoleFractions: []float64{0.25, 0.75},
		Departure: []mixture.DepartureInput{{
			Pair: []string{"Ethane", "Propane"},
			Type: "GERG-2008",
			F:    0.0130424765,
			N: []float64{
				2.5574776844118, -7.9846357136353, 4.7859131465806, -0.73265392369587,
				1.3805471345312, 0.28349603476365, -0.49087385940425, -0.10291888921447,
				0.11836314681968, 0.000055527385721943,
			},
			D:      []float64{1, 1, 1, 2, 2, 3, 3, 4, 4, 4},
			T:      []float64{1.0, 1.55, 1.7, 0.25, 1.35, 0.0, 1.25, 0.0, 0.7, 5.4},
			NPower: 10,
		}},
	}

	state, err := input.BuildState()
	if err != nil {
		log.Fatalf("cannot build mixture state: %v", err)
	}
	state.Update(Temperature, MolarDensity)

	fmt.Printf("Ethane/Propane 25/75 at T = %v K, rho = %v mol/m^3\n", Temperature, MolarDensity)
	fmt.Printf("p = %.2f Pa, tau = %.6f, delta = %.6f\n\n", state.P(), state.Tau(), state.Delta())

	for _, flag := range []mixture.Convention{mixture.XNIndependent, mixture.XNDependent} {
		fmt.Printf("convention: %v\n", flag)
		for i, name := range input.Components {
			fmt.Printf("  %-8v fugacity = %12.4f Pa, ln(phi) = %12.4e, partial molar volume = %12.4e m^3/mol\n",
				name,
				mixture.Fugacity(state, i, flag),
				mixture.LnFugacityCoefficient(state, i, flag),
				mixture.PartialMolarVolume(state, i, flag),
			)
		}
	}
}
