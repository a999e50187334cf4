package qcircuit

import (
	"math"

	"github.com/pkg/errors"
)

// BellVariant selects one of the four Bell states.
type BellVariant int

const (
	PhiPlus BellVariant = iota
	PhiMinus
	PsiPlus
	PsiMinus
)

func (v BellVariant) String() string {
	switch v {
	case PhiPlus:
		return "phi-plus"
	case PhiMinus:
		return "phi-minus"
	case PsiPlus:
		return "psi-plus"
	case PsiMinus:
		return "psi-minus"
	default:
		return "unknown"
	}
}

// ParseBellVariant accepts the names produced by BellVariant.String.
func ParseBellVariant(name string) (BellVariant, error) {
	for _, v := range []BellVariant{PhiPlus, PhiMinus, PsiPlus, PsiMinus} {
		if v.String() == name {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidAlgorithmParameter, "bell variant %q", name)
}

// preset builds an n-qubit register holding exactly the given amplitudes.
func preset(n int, amplitudes map[int]Complex) (*Register, error) {
	r, err := NewRegister(n)
	if err != nil {
		return nil, err
	}

	r.amplitudes[0] = 0
	for i, amp := range amplitudes {
		r.amplitudes[i] = amp
	}
	return r, nil
}

/*
BellState returns the two-qubit Bell state in closed form:
Φ± = (|00⟩ ± |11⟩)/√2 and Ψ± = (|01⟩ ± |10⟩)/√2.
*/
func BellState(v BellVariant) (*Register, error) {
	h := NewComplex(invSqrt2, 0)

	switch v {
	case PhiPlus:
		return preset(2, map[int]Complex{0: h, 3: h})
	case PhiMinus:
		return preset(2, map[int]Complex{0: h, 3: -h})
	case PsiPlus:
		return preset(2, map[int]Complex{1: h, 2: h})
	case PsiMinus:
		return preset(2, map[int]Complex{1: h, 2: -h})
	default:
		return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "bell variant %d", int(v))
	}
}

// GHZ returns (|00…0⟩ + |11…1⟩)/√2. It needs at least two qubits.
func GHZ(n int) (*Register, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "GHZ needs 2 or more qubits, got %d", n)
	}
	h := NewComplex(invSqrt2, 0)
	return preset(n, map[int]Complex{0: h, (1 << n) - 1: h})
}

// UniformSuperposition gives every basis state amplitude 1/√(2^n).
func UniformSuperposition(n int) (*Register, error) {
	r, err := NewRegister(n)
	if err != nil {
		return nil, err
	}

	amp := NewComplex(1/math.Sqrt(float64(r.Dimension())), 0)
	for i := range r.amplitudes {
		r.amplitudes[i] = amp
	}
	return r, nil
}

// WState spreads one excitation evenly: (|0…01⟩ + |0…10⟩ + … + |10…0⟩)/√n.
func WState(n int) (*Register, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "W state needs 2 or more qubits, got %d", n)
	}

	amp := NewComplex(1/math.Sqrt(float64(n)), 0)
	amplitudes := make(map[int]Complex, n)
	for q := 0; q < n; q++ {
		amplitudes[1<<q] = amp
	}
	return preset(n, amplitudes)
}

// BasisState returns the register collapsed onto index.
func BasisState(n, index int) (*Register, error) {
	if n < 1 || n > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "%d not in [1, %d]", n, MaxQubits)
	}
	if index < 0 || index >= 1<<n {
		return nil, errors.Wrapf(ErrDimensionMismatch, "basis index %d not in [0, %d)", index, 1<<n)
	}
	return preset(n, map[int]Complex{index: 1})
}
