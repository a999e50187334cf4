package qcircuit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

/*
Qubit is a lone single-qubit pure state α|0⟩ + β|1⟩ with |α|² + |β|² = 1.
Gate application returns a new Qubit; only Measure changes the receiver.
*/
type Qubit struct {
	alpha Complex // |0⟩ amplitude
	beta  Complex // |1⟩ amplitude
}

/*
NewQubit normalizes the given amplitudes. A degenerate input (norm too small
to divide by) yields |0⟩ instead of NaN amplitudes.
*/
func NewQubit(alpha, beta Complex) *Qubit {
	v, err := Normalize([]Complex{alpha, beta})
	if err != nil {
		return Zero()
	}
	return &Qubit{alpha: v[0], beta: v[1]}
}

func Zero() *Qubit { return &Qubit{alpha: 1, beta: 0} }

func One() *Qubit { return &Qubit{alpha: 0, beta: 1} }

// Plus is (|0⟩ + |1⟩)/√2.
func Plus() *Qubit {
	return &Qubit{alpha: NewComplex(invSqrt2, 0), beta: NewComplex(invSqrt2, 0)}
}

// Minus is (|0⟩ - |1⟩)/√2.
func Minus() *Qubit {
	return &Qubit{alpha: NewComplex(invSqrt2, 0), beta: NewComplex(-invSqrt2, 0)}
}

// PlusI is (|0⟩ + i|1⟩)/√2.
func PlusI() *Qubit {
	return &Qubit{alpha: NewComplex(invSqrt2, 0), beta: NewComplex(0, invSqrt2)}
}

// MinusI is (|0⟩ - i|1⟩)/√2.
func MinusI() *Qubit {
	return &Qubit{alpha: NewComplex(invSqrt2, 0), beta: NewComplex(0, -invSqrt2)}
}

// FromBloch returns cos(θ/2)|0⟩ + e^(iφ)·sin(θ/2)|1⟩.
func FromBloch(theta, phi float64) *Qubit {
	return NewQubit(
		NewComplex(math.Cos(theta/2), 0),
		FromPolar(math.Sin(theta/2), phi),
	)
}

// RandomQubit draws a state uniformly distributed over the Bloch sphere.
func RandomQubit(rng RandomSource) *Qubit {
	z := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	return FromBloch(math.Acos(z), phi)
}

func (q *Qubit) Alpha() Complex { return q.alpha }
func (q *Qubit) Beta() Complex  { return q.beta }

// P0 is the probability of measuring 0.
func (q *Qubit) P0() float64 { return q.alpha.AbsSquared() }

// P1 is the probability of measuring 1.
func (q *Qubit) P1() float64 { return q.beta.AbsSquared() }

// Vector returns the amplitudes as [α, β].
func (q *Qubit) Vector() []Complex {
	return []Complex{q.alpha, q.beta}
}

/*
BlochAngles returns θ ∈ [0, π] and φ ∈ [0, 2π). φ is reported as 0 when β is
negligible, since the relative phase is then unobservable.
*/
func (q *Qubit) BlochAngles() (theta, phi float64) {
	theta = 2 * math.Acos(clamp(q.alpha.Abs(), 0, 1))

	if q.beta.Abs() < DefaultEpsilon {
		return theta, 0
	}

	phi = math.Mod(q.beta.Arg()-q.alpha.Arg(), 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi >= 2*math.Pi {
		phi = 0
	}
	return theta, phi
}

// BlochVector returns the Cartesian point on the unit sphere.
func (q *Qubit) BlochVector() (x, y, z float64) {
	theta, phi := q.BlochAngles()
	return math.Sin(theta) * math.Cos(phi), math.Sin(theta) * math.Sin(phi), math.Cos(theta)
}

// Entropy is the Shannon entropy, in bits, of the measurement distribution.
func (q *Qubit) Entropy() float64 {
	return entropyBits([]float64{q.P0(), q.P1()})
}

/*
Measure draws one sample, collapses the receiver to |0⟩ or |1⟩ and returns the
classical bit.
*/
func (q *Qubit) Measure(rng RandomSource) int {
	outcome := collapse([]float64{q.P0(), q.P1()}, rng.Float64())

	if outcome == 0 {
		q.alpha, q.beta = 1, 0
	} else {
		q.alpha, q.beta = 0, 1
	}
	return outcome
}

// Apply returns M·q for a 2×2 matrix. The receiver is unchanged.
func (q *Qubit) Apply(m *Matrix) (*Qubit, error) {
	v, err := m.Apply(q.Vector())
	if err != nil {
		return nil, err
	}
	return NewQubit(v[0], v[1]), nil
}

// ApplyGate applies a single-qubit gate by kind.
func (q *Qubit) ApplyGate(kind GateKind, angle float64) (*Qubit, error) {
	if arity := kind.Arity(); arity != 1 {
		if kind == GateUnknown {
			return nil, errors.Wrap(ErrUnknownGate, "applying to qubit")
		}
		return nil, errors.Wrapf(ErrInvalidArity, "%s acts on %d qubits", kind, arity)
	}

	m, err := kind.Matrix(angle)
	if err != nil {
		return nil, err
	}
	return q.Apply(m)
}

func (q *Qubit) Clone() *Qubit {
	return &Qubit{alpha: q.alpha, beta: q.beta}
}

// Equal compares amplitudes within eps, including global phase.
func (q *Qubit) Equal(o *Qubit, eps float64) bool {
	return q.alpha.Equal(o.alpha, eps) && q.beta.Equal(o.beta, eps)
}

func (q *Qubit) String() string {
	return fmt.Sprintf("(%s)|0⟩ + (%s)|1⟩", q.alpha, q.beta)
}

// entropyBits is the Shannon entropy of p in bits.
func entropyBits(p []float64) float64 {
	return stat.Entropy(p) / math.Ln2
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
