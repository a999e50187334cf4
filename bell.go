package qcircuit

import (
	"fmt"

	"github.com/pkg/errors"
)

// BellResult is the trace plus the prepared state.
type BellResult struct {
	Trace
	Variant BellVariant
	// State is the prepared register before the final measurement.
	State              *Register
	Measured           int
	MaximallyEntangled bool
}

// bellBits maps a variant to the input bits (x on qubit 0, y on qubit 1) that prepare it.
func bellBits(v BellVariant) (x, y int, err error) {
	switch v {
	case PhiPlus:
		return 0, 0, nil
	case PhiMinus:
		return 1, 0, nil
	case PsiPlus:
		return 0, 1, nil
	case PsiMinus:
		return 1, 1, nil
	default:
		return 0, 0, errors.Wrapf(ErrInvalidAlgorithmParameter, "bell variant %d", int(v))
	}
}

/*
Bell prepares Φ+ with H on qubit 0 and CNOT(0→1), then adds Z on qubit 0 for
the minus variants and X on qubit 1 for the Ψ variants. The measurement is
taken on a copy, so State keeps the entangled pair.
*/
func Bell(v BellVariant, rng RandomSource) (*BellResult, error) {
	x, y, err := bellBits(v)
	if err != nil {
		return nil, err
	}
	return bellFromBits(v, x, y, rng)
}

// BellFromBits prepares β_xy, the Bell state the textbook circuit maps |x y⟩ to.
func BellFromBits(x, y int, rng RandomSource) (*BellResult, error) {
	for _, bit := range []int{x, y} {
		if bit != 0 && bit != 1 {
			return nil, errors.Wrapf(ErrInvalidAlgorithmParameter, "qubit bit value %d not in {0, 1}", bit)
		}
	}

	variants := [2][2]BellVariant{{PhiPlus, PsiPlus}, {PhiMinus, PsiMinus}}
	return bellFromBits(variants[x][y], x, y, rng)
}

func bellFromBits(v BellVariant, x, y int, rng RandomSource) (*BellResult, error) {
	reg, err := NewRegister(2)
	if err != nil {
		return nil, err
	}

	t := newTracer(AlgorithmBell, reg)
	t.record("init |00⟩", "Both qubits start in |0⟩")

	if err := t.gate(GateH, "Put qubit 0 into superposition", 0); err != nil {
		return nil, err
	}
	if err := t.gate(GateCNOT, "Copy qubit 0's basis value onto qubit 1, entangling them", 0, 1); err != nil {
		return nil, err
	}
	if x == 1 {
		if err := t.gate(GateZ, "Relative phase −1 on the |11⟩ branch", 0); err != nil {
			return nil, err
		}
	}
	if y == 1 {
		if err := t.gate(GateX, "Anti-correlate the pair", 1); err != nil {
			return nil, err
		}
	}

	state := reg.Clone()
	entangled := IsMaximallyEntangled(state)

	measured := reg.MeasureAll(rng)
	t.record("measure all", "Outcomes of the two qubits are perfectly correlated")

	t.trace.Outcomes = []int{measured & 1, (measured >> 1) & 1}
	t.trace.Correct = entangled
	t.trace.Interpretation = fmt.Sprintf("prepared %s, measured |%s⟩", v, BasisLabel(measured, 2))

	return &BellResult{
		Trace:              t.trace,
		Variant:            v,
		State:              state,
		Measured:           measured,
		MaximallyEntangled: entangled,
	}, nil
}
