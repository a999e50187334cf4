package qcircuit

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"
)

// MaxQubits bounds the dense state vector at 2^20 amplitudes.
const MaxQubits = 20

// unitaryEpsilon is the tolerance for accepting an operator as norm-preserving.
const unitaryEpsilon = 1e-9

func checkUnitary(m *Matrix) error {
	if !m.IsUnitary(unitaryEpsilon) {
		return errors.Wrapf(ErrNonUnitary, "%dx%d operator", m.Size(), m.Size())
	}
	return nil
}

/*
Register is the dense state vector of n qubits. Amplitude i belongs to the
basis state whose binary encoding is i, with bit k of i giving qubit k.

The register owns its amplitude slice exclusively. Gate application and
measurement mutate it in place and are not safe for concurrent use.
*/
type Register struct {
	qubits     int
	amplitudes []Complex
}

// NewRegister returns n qubits in |00…0⟩.
func NewRegister(n int) (*Register, error) {
	if n < 1 || n > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "%d not in [1, %d]", n, MaxQubits)
	}

	amplitudes := make([]Complex, 1<<n)
	amplitudes[0] = 1

	errnie.Info("NewRegister - qubits %d, dimension %d", n, len(amplitudes))

	return &Register{qubits: n, amplitudes: amplitudes}, nil
}

func (r *Register) Qubits() int { return r.qubits }

// Dimension is 2^n.
func (r *Register) Dimension() int { return len(r.amplitudes) }

func (r *Register) Amplitude(index int) (Complex, error) {
	if index < 0 || index >= len(r.amplitudes) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "basis index %d not in [0, %d)", index, len(r.amplitudes))
	}
	return r.amplitudes[index], nil
}

// Amplitudes returns a copy of the state vector.
func (r *Register) Amplitudes() []Complex {
	out := make([]Complex, len(r.amplitudes))
	copy(out, r.amplitudes)
	return out
}

// Probabilities returns |amplitude_i|² in basis-index order.
func (r *Register) Probabilities() []float64 {
	return probabilities(r.amplitudes)
}

/*
SetAmplitudes replaces the state vector with a normalized copy of v. A vector
too close to zero to normalize resets the register to |00…0⟩.
*/
func (r *Register) SetAmplitudes(v []Complex) error {
	if len(v) != len(r.amplitudes) {
		return errors.Wrapf(ErrDimensionMismatch, "%d amplitudes for %d qubits", len(v), r.qubits)
	}

	normalized, err := Normalize(v)
	if err != nil {
		r.Reset()
		return nil
	}

	r.amplitudes = normalized
	return nil
}

// Reset returns the register to |00…0⟩.
func (r *Register) Reset() {
	r.amplitudes = make([]Complex, len(r.amplitudes))
	r.amplitudes[0] = 1
}

// Clone deep-copies the register.
func (r *Register) Clone() *Register {
	return &Register{qubits: r.qubits, amplitudes: r.Amplitudes()}
}

func (r *Register) checkQubit(q int) error {
	if q < 0 || q >= r.qubits {
		return errors.Wrapf(ErrQubitIndexOutOfRange, "qubit %d not in [0, %d)", q, r.qubits)
	}
	return nil
}

/*
ApplySingleQubitGate applies the 2×2 matrix m to qubit q, i.e. the operator
I⊗…⊗M⊗…⊗I. Each basis index reads its own amplitude and that of its partner
with bit q flipped, and takes the matrix row selected by its own bit.
*/
func (r *Register) ApplySingleQubitGate(m *Matrix, q int) error {
	if m.Size() != 2 {
		return errors.Wrapf(ErrDimensionMismatch, "single-qubit gate needs a 2x2 matrix, got %dx%d", m.Size(), m.Size())
	}
	if err := r.checkQubit(q); err != nil {
		return err
	}
	if err := checkUnitary(m); err != nil {
		return err
	}

	mask := 1 << q
	next := make([]Complex, len(r.amplitudes))

	for i := range r.amplitudes {
		row := (i >> q) & 1
		zero := r.amplitudes[i&^mask]
		one := r.amplitudes[i|mask]
		next[i] = m.At(row, 0)*zero + m.At(row, 1)*one
	}

	r.amplitudes = next
	return nil
}

/*
ApplyTwoQubitGate applies the 4×4 matrix m to the (control, target) pair. The
matrix is indexed by the sub-index (control bit << 1) | target bit. Each basis
index scatters its amplitude over the four sub-index combinations while every
other bit stays fixed, so qubits outside the pair are untouched.
*/
func (r *Register) ApplyTwoQubitGate(m *Matrix, control, target int) error {
	if m.Size() != 4 {
		return errors.Wrapf(ErrDimensionMismatch, "two-qubit gate needs a 4x4 matrix, got %dx%d", m.Size(), m.Size())
	}
	if err := r.checkQubit(control); err != nil {
		return err
	}
	if err := r.checkQubit(target); err != nil {
		return err
	}
	if control == target {
		return errors.Wrapf(ErrInvalidQubitPair, "qubit %d", control)
	}
	if err := checkUnitary(m); err != nil {
		return err
	}

	controlMask, targetMask := 1<<control, 1<<target
	next := make([]Complex, len(r.amplitudes))

	for i, amp := range r.amplitudes {
		if amp == 0 {
			continue
		}

		in := ((i>>control)&1)<<1 | (i>>target)&1
		base := i &^ (controlMask | targetMask)

		for out := 0; out < 4; out++ {
			j := base
			if out&2 != 0 {
				j |= controlMask
			}
			if out&1 != 0 {
				j |= targetMask
			}
			next[j] += m.At(out, in) * amp
		}
	}

	r.amplitudes = next
	return nil
}

/*
ApplyOperator applies a full 2^n×2^n operator. Rows and columns are basis
indices, so for two qubits a.Tensor(b) puts a on qubit 1 and b on qubit 0.
Non-unitary operators are rejected before the state is touched.
*/
func (r *Register) ApplyOperator(m *Matrix) error {
	if m.Size() != len(r.amplitudes) {
		return errors.Wrapf(ErrDimensionMismatch, "%dx%d operator on %d amplitudes", m.Size(), m.Size(), len(r.amplitudes))
	}
	if err := checkUnitary(m); err != nil {
		return err
	}

	next, err := m.Apply(r.amplitudes)
	if err != nil {
		return err
	}
	r.amplitudes = next
	return nil
}

/*
ApplyGate dispatches a gate by kind. Single-qubit kinds take one target,
two-qubit kinds take (control, target). Angle is used by parametric gates.
*/
func (r *Register) ApplyGate(kind GateKind, angle float64, targets ...int) error {
	if kind == GateUnknown {
		return errors.Wrap(ErrUnknownGate, "applying to register")
	}
	if len(targets) != kind.Arity() {
		return errors.Wrapf(ErrInvalidArity, "%s takes %d targets, got %d", kind, kind.Arity(), len(targets))
	}

	m, err := kind.Matrix(angle)
	if err != nil {
		return err
	}

	if kind.Arity() == 1 {
		return r.ApplySingleQubitGate(m, targets[0])
	}
	return r.ApplyTwoQubitGate(m, targets[0], targets[1])
}

/*
MeasureAll samples one basis state from the full distribution, collapses the
register onto it and returns its index.
*/
func (r *Register) MeasureAll(rng RandomSource) int {
	index := collapse(r.Probabilities(), rng.Float64())

	r.amplitudes = make([]Complex, len(r.amplitudes))
	r.amplitudes[index] = 1
	return index
}

/*
MeasureQubit measures qubit q alone. Amplitudes inconsistent with the outcome
are zeroed and the survivors are divided by √P(outcome), so the remaining
qubits keep their relative amplitudes and phases.
*/
func (r *Register) MeasureQubit(q int, rng RandomSource) (int, error) {
	if err := r.checkQubit(q); err != nil {
		return 0, err
	}

	marginal := r.marginal(q)
	outcome := collapse(marginal[:], rng.Float64())
	p := marginal[outcome]

	if p == 0 {
		r.Reset()
		return outcome, nil
	}

	scale := 1 / math.Sqrt(p)
	for i := range r.amplitudes {
		if (i>>q)&1 == outcome {
			r.amplitudes[i] = r.amplitudes[i].Scale(scale)
		} else {
			r.amplitudes[i] = 0
		}
	}

	return outcome, nil
}

// MarginalProbabilities returns P(qubit q = 0) and P(qubit q = 1).
func (r *Register) MarginalProbabilities(q int) ([2]float64, error) {
	if err := r.checkQubit(q); err != nil {
		return [2]float64{}, err
	}
	return r.marginal(q), nil
}

func (r *Register) marginal(q int) [2]float64 {
	var p [2]float64
	for i, amp := range r.amplitudes {
		p[(i>>q)&1] += amp.AbsSquared()
	}
	return p
}

// Fidelity is |⟨r|o⟩|², insensitive to global phase.
func (r *Register) Fidelity(o *Register) (float64, error) {
	overlap, err := InnerProduct(r.amplitudes, o.amplitudes)
	if err != nil {
		return 0, err
	}
	return overlap.AbsSquared(), nil
}

// BasisLabel writes index as an n-bit string with qubit 0 rightmost.
func BasisLabel(index, n int) string {
	return fmt.Sprintf("%0*b", n, index)
}

// String lists the non-negligible terms, e.g. "(0.7071)|00⟩ + (0.7071)|11⟩".
func (r *Register) String() string {
	terms := make([]string, 0)
	for i, amp := range r.amplitudes {
		if amp.AbsSquared() < DefaultEpsilon {
			continue
		}
		terms = append(terms, fmt.Sprintf("(%s)|%s⟩", amp, BasisLabel(i, r.qubits)))
	}

	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}
