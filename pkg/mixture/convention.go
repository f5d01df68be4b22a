package mixture

import "errors"

// Convention selects how mole-fraction derivatives treat the simplex
// constraint sum(x) = 1.
//
// Under XNIndependent every mole fraction is a free variable and derivatives
// with respect to x_i ignore the constraint. Under XNDependent the last mole
// fraction is eliminated via x_N = 1 - sum(x_k, k < N), derivatives are taken
// over the remaining N-1 free variables, and any derivative with respect to
// the eliminated index N-1 is identically zero.
//
// A single computation never mixes conventions: the flag is passed explicitly
// to every derivative call.
type Convention int

const (
	XNIndependent Convention = iota
	XNDependent
)

// ErrInvalidConvention is the value carried by the panic raised when a
// derivative call receives a Convention outside the two defined values. The
// flag is part of the calling contract, so an invalid value is a programming
// error rather than a recoverable condition.
var ErrInvalidConvention = errors.New("invalid mole-fraction differentiation convention")

// Validate lets callers that construct a Convention from external input check
// it as an ordinary error before entering the derivative catalogue.
func (c Convention) Validate() error {
	if c != XNIndependent && c != XNDependent {
		return ErrInvalidConvention
	}
	return nil
}

func (c Convention) String() string {
	switch c {
	case XNIndependent:
		return "independent"
	case XNDependent:
		return "dependent"
	}
	return "invalid"
}
