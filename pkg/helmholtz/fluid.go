package helmholtz

// Fluid is one pure component of a mixture: its critical-point constants used
// by the reducing model and its residual equation of state, evaluated at the
// mixture's reduced state.
type Fluid struct {
	Name string
	Tc   float64 // critical temperature [K]
	Rhoc float64 // critical molar density [mol/m^3]
	EOS  ResidualHelmholtz
}

// Short technical equations of state (12-term power/exponential form shared by
// the normal alkanes). The density exponents, temperature exponents and
// exponential powers are common to the family; only the coefficients and
// critical constants differ per fluid.
var (
	alkaneD = []float64{1, 1, 1, 2, 3, 7, 2, 5, 1, 4, 3, 4}
	alkaneT = []float64{0.25, 1.125, 1.5, 1.375, 0.25, 0.875, 0.625, 1.75, 3.625, 3.625, 14.5, 12.0}
	alkaneL = []float64{0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3}
)

func alkaneEOS(n []float64) ResidualHelmholtz {
	phi := &GeneralizedExponential{}
	phi.addPower(n, alkaneD, alkaneT, alkaneL)
	return phi
}

func Methane() *Fluid {
	return &Fluid{
		Name: "Methane",
		Tc:   190.564,
		Rhoc: 10139.128,
		EOS: alkaneEOS([]float64{
			0.89269676, -2.5438282, 0.64980978, 0.020793471, 0.070189104, 0.00023700378,
			0.16653334, -0.043855669, -0.1572678, -0.035351209, -0.029570024, 0.014019842,
		}),
	}
}

func Ethane() *Fluid {
	return &Fluid{
		Name: "Ethane",
		Tc:   305.322,
		Rhoc: 6856.887,
		EOS: alkaneEOS([]float64{
			0.97628068, -2.6905251, 0.73498222, -0.035366206, 0.084692031, 0.00024154594,
			0.23964954, -0.042780093, -0.22308832, -0.051799954, -0.027178426, 0.011246305,
		}),
	}
}

func Propane() *Fluid {
	return &Fluid{
		Name: "Propane",
		Tc:   369.825,
		Rhoc: 5000.043,
		EOS: alkaneEOS([]float64{
			1.0403973, -2.8318404, 0.84393809, -0.076559591, 0.09469737, 0.00024796846,
			0.2774376, -0.043846001, -0.2991548, -0.080369342, -0.029761373, 0.01305963,
		}),
	}
}

var catalogue = map[string]func() *Fluid{
	"Methane": Methane,
	"Ethane":  Ethane,
	"Propane": Propane,
}

// FluidByName returns a fresh instance of a catalogued fluid, or nil when the
// name is unknown.
func FluidByName(name string) *Fluid {
	constructor, ok := catalogue[name]
	if !ok {
		return nil
	}
	return constructor()
}
