package qcircuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/pkg/errors"
)

// DefaultEpsilon is the tolerance used for approximate comparisons.
const DefaultEpsilon = 1e-10

// divisionEpsilon is the smallest divisor magnitude Div accepts.
const divisionEpsilon = 1e-15

/*
Complex is an immutable complex scalar. Every operation returns a new value,
so it can be copied and shared freely.
*/
type Complex complex128

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex(complex(re, im))
}

// FromPolar returns r·e^(iθ).
func FromPolar(r, theta float64) Complex {
	return Complex(cmplx.Rect(r, theta))
}

// Re is the real part.
func (c Complex) Re() float64 { return real(c) }

// Im is the imaginary part.
func (c Complex) Im() float64 { return imag(c) }

func (c Complex) Add(o Complex) Complex { return c + o }
func (c Complex) Sub(o Complex) Complex { return c - o }
func (c Complex) Mul(o Complex) Complex { return c * o }

// Scale multiplies by a real factor.
func (c Complex) Scale(f float64) Complex {
	return Complex(complex(real(c)*f, imag(c)*f))
}

// Div divides c by o, failing with ErrDivisionByZero when |o| is negligible.
func (c Complex) Div(o Complex) (Complex, error) {
	if o.Abs() < divisionEpsilon {
		return 0, errors.Wrapf(ErrDivisionByZero, "dividing %s by %s", c, o)
	}
	return c / o, nil
}

// Conj is the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex(cmplx.Conj(complex128(c)))
}

// Abs is the magnitude |c|.
func (c Complex) Abs() float64 {
	return cmplx.Abs(complex128(c))
}

// AbsSquared is |c|², the Born-rule probability of an amplitude.
func (c Complex) AbsSquared() float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}

// Arg is the argument in [-π, π].
func (c Complex) Arg() float64 {
	return math.Atan2(imag(c), real(c))
}

/*
Pow raises c to a real power through its polar form. Zero to a positive
power is zero and anything to the power zero is one.
*/
func (c Complex) Pow(n float64) Complex {
	if n == 0 {
		return 1
	}

	r := c.Abs()
	if r == 0 {
		return 0
	}

	return FromPolar(math.Pow(r, n), c.Arg()*n)
}

// Equal reports whether both parts differ by at most eps.
func (c Complex) Equal(o Complex, eps float64) bool {
	return math.Abs(real(c)-real(o)) <= eps && math.Abs(imag(c)-imag(o)) <= eps
}

// ApproxEqual is Equal with DefaultEpsilon.
func (c Complex) ApproxEqual(o Complex) bool {
	return c.Equal(o, DefaultEpsilon)
}

func (c Complex) String() string {
	re, im := real(c), imag(c)

	switch {
	case math.Abs(im) < DefaultEpsilon:
		return fmt.Sprintf("%.4f", re)
	case math.Abs(re) < DefaultEpsilon:
		return fmt.Sprintf("%.4fi", im)
	case im < 0:
		return fmt.Sprintf("%.4f-%.4fi", re, -im)
	default:
		return fmt.Sprintf("%.4f+%.4fi", re, im)
	}
}
